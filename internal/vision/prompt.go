package vision

import "fmt"

const promptTemplate = `Analyze this pathology slide image and provide a medical assessment.

Organ: %s
Clinical Context: %s

Please provide your analysis in the following JSON format:
{
    "observation": "Your detailed observations about the slide",
    "preliminaryDiagnosis": "Your preliminary diagnosis based on the slide",
    "confidenceLevel": "Low/Medium/High",
    "disclaimer": "Medical disclaimer about the analysis"
}

Important: Return ONLY valid JSON, no additional text.`

// BuildPrompt renders the shared instructional prompt used by both tiers.
func BuildPrompt(organ, clinicalContext string) string {
	return fmt.Sprintf(promptTemplate, organ, clinicalContext)
}
