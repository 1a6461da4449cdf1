package prompter

type ContentType string

const (
	ContentTypeTechnical ContentType = "technical"
	ContentTypeCreative  ContentType = "creative"
	ContentTypePersonal  ContentType = "personal"
	ContentTypeAcademic  ContentType = "academic"
)

func (t ContentType) valid() bool {
	_, ok := templates[t]
	return ok
}

type Mood string

const (
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodDark      Mood = "dark"
	MoodBright    Mood = "bright"
	MoodNeutral   Mood = "neutral"
)

func (m Mood) valid() bool {
	_, ok := templates[ContentTypePersonal][m]
	return ok
}

// Template returns the base scene description for a content type and mood.
func Template(t ContentType, m Mood) string {
	if moods, ok := templates[t]; ok {
		if val, ok := moods[m]; ok {
			return val
		}
	}

	return templates[ContentTypePersonal][MoodNeutral]
}

var templates = map[ContentType]map[Mood]string{
	ContentTypeTechnical: {
		MoodCalm:      "Clean, minimal, professional workspace with subtle geometric patterns, soft focused lighting, modern minimalist design",
		MoodEnergetic: "Dynamic, modern tech environment with sleek interfaces, bright accent lighting, innovative atmosphere",
		MoodDark:      "Sophisticated dark workspace with subtle neon accents, professional coding environment, focused ambiance",
		MoodBright:    "Bright, airy modern office space with clean lines, natural light, productive atmosphere",
		MoodNeutral:   "Professional, clean workspace with balanced lighting, organized environment, distraction-free",
	},

	ContentTypeCreative: {
		MoodCalm:      "Peaceful creative studio with soft, inspiring lighting, artistic atmosphere, gentle creative energy",
		MoodEnergetic: "Vibrant creative space with dynamic lighting, artistic chaos, inspiring creative energy",
		MoodDark:      "Moody creative atelier with dramatic lighting, artistic shadows, intense creative focus",
		MoodBright:    "Bright, inspiring creative space with natural light, artistic materials, uplifting atmosphere",
		MoodNeutral:   "Balanced creative environment with artistic elements, comfortable lighting, creative flow",
	},

	ContentTypePersonal: {
		MoodCalm:      "Cozy, intimate personal space with warm lighting, comfortable atmosphere, private sanctuary",
		MoodEnergetic: "Lively personal space with vibrant colors, energetic atmosphere, personal expression",
		MoodDark:      "Intimate, contemplative personal space with soft shadows, reflective mood, personal depth",
		MoodBright:    "Cheerful, personal space with warm natural light, uplifting atmosphere, personal comfort",
		MoodNeutral:   "Comfortable personal environment with balanced lighting, familiar atmosphere, personal peace",
	},

	ContentTypeAcademic: {
		MoodCalm:      "Serene library atmosphere with soft reading lights, scholarly environment, contemplative study space",
		MoodEnergetic: "Dynamic academic environment with bright lighting, innovative learning space, intellectual energy",
		MoodDark:      "Traditional academic setting with warm lamplight, classical scholarly atmosphere, deep focus",
		MoodBright:    "Bright, modern academic space with natural light, clean learning environment, intellectual clarity",
		MoodNeutral:   "Balanced academic environment with comfortable lighting, focused study atmosphere, scholarly peace",
	},
}
