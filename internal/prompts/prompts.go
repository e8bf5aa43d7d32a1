// Pure prompt builders for the backend's LLM tasks. Each function
// formats plain-text inputs into a single instruction string that
// embeds the strict output schema the downstream model must follow.
// Parsing and validation of the model's answer happen server-side,
// never here.
package prompts

import "fmt"

// InterviewQuestions asks for five questions tailored to a job
// description.
func InterviewQuestions(jobDescription string) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Generate exactly 5 relevant interview questions for the following job description.

Job Description:
%s

Requirements:
- Mix of technical and behavioral questions
- Appropriate difficulty levels
- Relevant to the specific role
- Clear and professional

IMPORTANT: Return ONLY a valid JSON array with NO markdown formatting, NO explanations, just pure JSON:

[
  {
    "question": "string",
    "type": "technical|behavioral",
    "difficulty": "easy|medium|hard",
    "category": "string"
  }
]

Generate the 5 questions now:`, jobDescription)
}

// EvaluateAnswer asks for coach-style feedback on a candidate answer.
func EvaluateAnswer(question, answer string) string {
	return fmt.Sprintf(`You are an experienced interview coach. Evaluate the candidate's answer to the following interview question.

Interview Question:
%s

Candidate's Answer:
%s

Provide constructive, detailed feedback with:
1. A score from 1-10
2. Specific strengths (2-3 points)
3. Areas for improvement (2-3 points)
4. Actionable suggestions (2-3 points)
5. Overall encouraging feedback

IMPORTANT: Return ONLY valid JSON with NO markdown formatting, NO explanations:

{
  "score": number,
  "strengths": ["string"],
  "improvements": ["string"],
  "suggestions": ["string"],
  "overallFeedback": "string"
}

Evaluate now:`, question, answer)
}

// MatchResumeToJob asks how well a resume fits a specific posting.
func MatchResumeToJob(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert recruiter and resume analyst. Analyze how well this resume matches the job requirements.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide a comprehensive analysis including:
1. Match score (0-100)
2. Matching skills found in resume
3. Skills required but missing from resume
4. Candidate's key strengths for this role
5. Specific recommendations to improve fit
6. Overall summary

IMPORTANT: Return ONLY valid JSON with NO markdown formatting, NO explanations:

{
  "matchScore": number,
  "matchingSkills": ["string"],
  "missingSkills": ["string"],
  "strengths": ["string"],
  "recommendations": ["string"],
  "summary": "string"
}

Analyze now:`, resumeText, jobDescription)
}

// AnalyzeResume asks for a job-independent ATS assessment.
func AnalyzeResume(resumeText string) string {
	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) expert and resume analyst. Analyze this resume comprehensively.

RESUME TEXT:
%s

Provide a detailed analysis including:
1. ATS Score (0-100) - how well the resume would perform in ATS systems
2. All technical and soft skills extracted from the resume
3. Key strengths of this resume
4. Areas that need improvement
5. Specific actionable recommendations
6. Overall professional summary

Consider:
- Keyword density and relevance
- Formatting and structure
- Quantifiable achievements
- Missing important sections
- ATS-friendly formatting
- Industry-standard terminology

IMPORTANT: Return ONLY valid JSON with NO markdown formatting, NO explanations:

{
  "atsScore": number,
  "skills": ["string"],
  "strengths": ["string"],
  "improvements": ["string"],
  "recommendations": ["string"],
  "summary": "string"
}

Analyze now:`, resumeText)
}

// OptimizeResume asks for general CV improvement advice, no job
// description required.
func OptimizeResume(resumeText string) string {
	return fmt.Sprintf(`You are a professional resume writer and career coach. Analyze this resume and provide actionable advice to improve it overall.

RESUME TEXT:
%s

Focus on:
1. Overall quality score (0-100)
2. Formatting and structure
3. Content clarity and impact
4. What sections to add/improve/remove
5. Writing style and action verbs
6. Quantifiable achievements
7. Professional presentation

IMPORTANT: Return ONLY valid JSON with NO markdown formatting, NO explanations:

{
  "qualityScore": number,
  "detectedSkills": ["string"],
  "strengths": ["string"],
  "weaknesses": ["string"],
  "recommendations": ["string"],
  "sectionsToAdd": ["string"],
  "sectionsToRemove": ["string"],
  "formattingTips": ["string"],
  "summary": "string"
}

Analyze now:`, resumeText)
}

// ATSCheck asks how a resume would fare against one specific job's
// ATS filter.
func ATSCheck(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an ATS (Applicant Tracking System) expert. Analyze how well this resume would perform against this specific job's ATS system.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide ATS-specific analysis:
1. ATS Compatibility Score (0-100) - how well the resume passes ATS filters
2. Keyword match analysis
3. Missing critical keywords from job description
4. Formatting issues that might confuse ATS
5. Specific recommendations to improve ATS score for THIS job

IMPORTANT: Return ONLY valid JSON with NO markdown formatting, NO explanations:

{
  "atsScore": number,
  "keywordMatchRate": number,
  "matchedKeywords": ["string"],
  "missingKeywords": ["string"],
  "criticalMissing": ["string"],
  "formattingIssues": ["string"],
  "recommendations": ["string"],
  "alignment": {
    "technical": number,
    "experience": number,
    "education": number,
    "overall": number
  },
  "summary": "string"
}

Analyze now:`, resumeText, jobDescription)
}
