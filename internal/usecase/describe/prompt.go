package describe

import (
	"fmt"

	"github.com/kailas-cloud/posedex/internal/domain/pose"
)

const promptTemplate = `Generate a concise description (max 50 words) for the yoga pose: %s
Also known as: %s
Expertise Level: %s
Pose Type: %s

Include key benefits and any important alignment cues.`

func buildPrompt(p *pose.Pose) string {
	return fmt.Sprintf(promptTemplate, p.Name, p.SanskritName, p.ExpertiseLevel, p.PoseTypes())
}
