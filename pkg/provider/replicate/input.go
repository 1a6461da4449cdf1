package replicate

// SDXL 1.0
const DefaultVersion = "a00d0b7dcbb9c3fbb34ba87d2d5b46c56969c84a628bf778a7fdaec30b1b99c5"

// Input holds the generation parameters sent with every prediction.
type Input struct {
	NegativePrompt string

	Width  int
	Height int

	Outputs   int
	Scheduler string

	Steps          int
	GuidanceScale  float64
	PromptStrength float64

	Refine        string
	HighNoiseFrac float64
}

var DefaultInput = Input{
	NegativePrompt: "text, words, letters, watermark, logo, people, faces, portraits",

	Width:  1024,
	Height: 768,

	Outputs:   1,
	Scheduler: "K_EULER",

	Steps:          25,
	GuidanceScale:  7.5,
	PromptStrength: 0.8,

	Refine:        "expert_ensemble_refiner",
	HighNoiseFrac: 0.8,
}

func (i Input) prediction(prompt string) map[string]any {
	// https://replicate.com/stability-ai/sdxl/api/schema#input-schema
	return map[string]any{
		"prompt":          prompt,
		"negative_prompt": i.NegativePrompt,

		"width":  i.Width,
		"height": i.Height,

		"num_outputs": i.Outputs,
		"scheduler":   i.Scheduler,

		"num_inference_steps": i.Steps,
		"guidance_scale":      i.GuidanceScale,
		"prompt_strength":     i.PromptStrength,

		"refine":          i.Refine,
		"high_noise_frac": i.HighNoiseFrac,
	}
}
