package services

import (
	"fmt"
	"strings"
)

// PromptBuilder renders each analysis task into one instruction string for
// the model. All builders are pure: same inputs, byte-identical prompt.
// Inputs are interpolated verbatim with no truncation or escaping; a
// document that tries to talk its way past the instructions is an accepted
// risk, not something we sanitize away.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// jobSearchCities is the fixed set of cities unioned with whatever
// locations the model extracts from the resume summary.
var jobSearchCities = []string{
	"New York", "San Francisco", "Seattle", "Austin", "Boston",
	"Chicago", "Los Angeles", "Denver", "Atlanta", "Dallas",
}

// BuildSummarizePrompt asks for a plain concise summary of arbitrary text.
func (pb *PromptBuilder) BuildSummarizePrompt(text string) string {
	return fmt.Sprintf("Please summarize the following text concisely:\n\n%s", text)
}

// BuildResumeSummaryPrompt asks for a structured summary of a resume.
func (pb *PromptBuilder) BuildResumeSummaryPrompt(resumeText string) string {
	return fmt.Sprintf(`**Objective:** Generate a concise and structured summary of the candidate's resume, focusing on key aspects relevant to a job application.

**Instructions:**
1. **Professional Summary:** Provide a high-level overview of the candidate's background, including total years of experience and industry expertise.
2. **Key Skills & Technologies:** List the technical and soft skills mentioned in the resume.
3. **Work Experience:** Summarize the most relevant job roles and responsibilities, emphasizing achievements, leadership roles, and industry contributions.
4. **Certifications & Education:** Highlight degrees, certifications, and relevant training programs.
5. **Notable Projects & Contributions:** Mention any major projects, open-source contributions, or research work if applicable.

**Candidate Resume:**
%s

**Output Format:**
- Use bullet points or a structured format for clarity.
- Focus on concise but impactful insights.
- Ensure the summary highlights the most critical qualifications relevant to a job search.
`, resumeText)
}

// BuildRequirementsSummaryPrompt asks for a structured summary of a job
// description.
func (pb *PromptBuilder) BuildRequirementsSummaryPrompt(requirementsText string) string {
	return fmt.Sprintf(`**Objective:** Provide a well-structured and concise summary of the job requirements, focusing on the key criteria for candidate evaluation.

**Instructions:**
1. **Job Title & Summary:** Extract the job title and provide a brief description of the role's primary purpose.
2. **Key Skills & Technologies Required:** List essential technical and soft skills necessary for the position.
3. **Experience Level:** Specify the required years of experience and any industry-specific expectations.
4. **Educational Qualifications:** Summarize the degree, certifications, or training requirements.
5. **Responsibilities & Expectations:** Highlight the primary duties and expectations for the candidate.
6. **Preferred Qualifications (if any):** Mention additional desirable skills, certifications, or industry knowledge.

**Job Description:**
%s

**Output Format:**
- Present the summary in a structured format with headings and bullet points.
- Focus on extracting the most critical and relevant details.
- Keep the summary concise while ensuring all major requirements are covered.
`, requirementsText)
}

// BuildAlignmentPrompt compares a resume summary against a requirements
// summary. The requested output must contain a "Fit Percentage" line so the
// interpreter has something to find.
func (pb *PromptBuilder) BuildAlignmentPrompt(resumeSummary, requirementsSummary, extraInstructions string) string {
	return fmt.Sprintf(`**Objective:** Perform a thorough and structured analysis of the candidate's resume against the given job description to determine their suitability for the role.

**Instructions:**
1. **Resume Summary:** Provide a well-structured summary of the candidate's qualifications, skills, and work experience. Highlight notable achievements, certifications, and technical expertise.
2. **Alignment Analysis:** Compare the candidate's profile with the job requirements in detail:
   - Identify key strengths that align with the role.
   - Highlight specific skills, technologies, or experiences that match the job description, using direct references from the resume.
   - Evaluate relevant projects, roles, or industry exposure.
3. **Gaps & Areas of Improvement:**
   - Identify missing or weak areas where the candidate does not fully meet the job requirements.
   - Provide clear and actionable recommendations to bridge these gaps, such as acquiring certain skills, certifications, or work experience.
4. **Fit Percentage Calculation:** Assign a fit percentage (0-100) based on how well the candidate's profile aligns with the job requirements. Justify this score with:
   - A breakdown of how each major requirement is met.
   - Weighting factors for experience, technical expertise, and industry relevance.
   - A reasoned explanation behind the final score, ensuring a conservative and objective assessment.
5. **Final Recommendation:** Summarize the overall fit of the candidate:
   - Clearly state whether the candidate is a strong match, a moderate fit with areas for improvement, or not a suitable match.
   - Provide a short concluding statement with the primary reason for the recommendation.

**Data Blocks:**
**Candidate Resume:**
%s

**Job Requirements:**
%s

**Output Format:**
- Use clear section headings for readability.
- Present comparisons and analysis in bullet points or tables where applicable.
- Ensure the final output includes a 'Fit Percentage' line in the form 'Fit Percentage: NN%%' and a 'Final Recommendation' section.
- Keep the insights concise, relevant, and actionable.

**Additional Instructions:**
%s
`, resumeSummary, requirementsSummary, extraInstructions)
}

// BuildATSScorePrompt asks for an ATS compatibility report over a fixed
// weighted rubric. The report is rendered to the user verbatim; nothing is
// parsed out of it.
func (pb *PromptBuilder) BuildATSScorePrompt(resumeSummary string) string {
	return fmt.Sprintf(`Objective: Analyze the uploaded resume with an in-depth Applicant Tracking System (ATS) evaluation. Provide a detailed ATS compatibility score based on keyword optimization, formatting, readability, structuring, and job relevance. Identify strengths, weaknesses, and actionable improvements for better ATS performance.

🛠️ Evaluation Criteria:
1️⃣ Keyword Optimization (30%%)
Extract job-relevant keywords and compare them with the provided job description (if available).
Highlight missing or underused keywords.
Evaluate keyword placement in key sections (Summary, Skills, Experience).
2️⃣ Formatting & ATS Readability (20%%)
Check for ATS-friendly formatting (no tables, graphics, columns that could break parsing).
Verify clear section headings ('Work Experience,' 'Education') for accurate parsing.
Ensure proper use of bullet points and font styles for readability.
3️⃣ Section Structuring & Completeness (15%%)
Validate the presence of essential sections: Contact Information, Summary/Objective Statement, Work Experience, Skills, Education & Certifications, Additional Sections.
Identify any missing sections affecting ATS ranking.
4️⃣ Work Experience & Achievements (15%%)
Assess proper job entry structure (Company → Job Title → Dates → Responsibilities).
Check for quantifiable achievements and action-oriented language.
5️⃣ Job Match & Customization (10%%)
Compare the resume's content against a provided job description.
Generate a Job Match Score (%%) based on keyword and experience alignment.
6️⃣ Grammar, Consistency & Readability (10%%)
Check for grammar, punctuation, and spelling errors.
Assess consistency in formatting, date formats, and tense usage.

📌 Structured Output Format:
📊 ATS Resume Analysis Report
✅ Final ATS Resume Score: X/100

📌 Section-Wise Breakdown:
🔹 Keyword Optimization: X/30
🔹 Formatting & ATS Readability: X/20
🔹 Section Structuring & Completeness: X/15
🔹 Work Experience & Achievements: X/15
🔹 Job Match Score: X/10
🔹 Grammar & Readability: X/10

📌 Key Strengths:
✔️ [Highlight 2-3 strong points of the resume]

📌 Critical Improvements Needed:
⚠️ [List major issues affecting ATS ranking]

🚀 Final Recommendation:
✅ Good to Go | 🟡 Needs Minor Fixes | 🔴 Requires Major Improvement

Resume:
%s
`, resumeSummary)
}

// BuildCoverLetterPrompt renders a cover-letter request from the resume
// summary and a target job description.
func (pb *PromptBuilder) BuildCoverLetterPrompt(resumeSummary, jobDescription, extraInstructions string) string {
	return fmt.Sprintf(`**Objective:** Write a formal, professional cover letter for the candidate, tailored to the target job description.

**Instructions:**
1. Open with a strong introduction stating the role being applied for and the candidate's overall fit.
2. Connect the candidate's most relevant experience, skills, and achievements to the job's requirements, using concrete details from the candidate profile.
3. Convey genuine motivation for the role and the company without restating the resume line by line.
4. Close with a confident call to action and a courteous sign-off.

**Candidate Profile:**
%s

**Job Description:**
%s

**Additional Instructions:**
%s

**Output Format:**
- Return only the body of the cover letter, ready to send.
- Keep it to three or four paragraphs in a formal tone.
`, resumeSummary, jobDescription, extraInstructions)
}

// BuildJobKeywordsPrompt is stage one of the job-search flow: pull
// search-worthy keywords out of the resume summary.
func (pb *PromptBuilder) BuildJobKeywordsPrompt(resumeSummary string) string {
	return fmt.Sprintf(`**Objective:** Extract job-search keywords from the candidate profile below.

**Instructions:**
1. **Roles:** List the job titles or roles the candidate is qualified for.
2. **Skills:** List the candidate's marketable hard skills. Exclude soft skills.
3. **Technologies:** List specific technologies, tools, and platforms the candidate has used.
4. **Locations:** List any locations mentioned in the profile.

**Candidate Profile:**
%s

**Output Format:**
Return exactly four labeled lines, nothing else:
Roles: <comma-separated values>
Skills: <comma-separated values>
Technologies: <comma-separated values>
Locations: <comma-separated values>
`, resumeSummary)
}

// BuildJobSearchURLPrompt is stage two: turn stage one's raw output into a
// single search-engine URL. The model does the query construction and the
// percent-encoding; the returned string is used as-is.
func (pb *PromptBuilder) BuildJobSearchURLPrompt(keywordsBlob string) string {
	cities := `"` + strings.Join(jobSearchCities, `", "`) + `"`
	return fmt.Sprintf(`**Objective:** Build a single job-search URL from the extracted keywords below.

**Extracted Keywords:**
%s

**Instructions:**
1. Combine the Locations above with the following cities: %s.
2. Build a boolean search query: within each category (roles, skills, technologies, locations) join the quoted terms with OR; join the categories with AND; append the clause ("fulltime" OR "internship").
3. Percent-encode the full query.
4. Return ONLY a fully formed URL in exactly this format, with no other text:
https://www.google.com/search?q=<percent-encoded query>
`, keywordsBlob, cities)
}
