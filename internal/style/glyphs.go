package style

// GlyphCategory groups decorative glyphs for pickers
type GlyphCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Glyphs []string `json:"glyphs" yaml:"glyphs"`
}

var glyphCategories = []GlyphCategory{
	{Name: "Business", Glyphs: []string{"💼", "📈", "💰", "🏢", "📊", "⚡", "🎯", "🔧", "📋", "💡"}},
	{Name: "Technology", Glyphs: []string{"💻", "📱", "⚙️", "🔌", "📡", "🛠️", "🖥️", "🔒", "☁️", "🚀"}},
	{Name: "Education", Glyphs: []string{"📚", "🎓", "✏️", "📝", "🔬", "🧮", "📐", "🎨", "🏫", "👨‍🏫"}},
	{Name: "Health", Glyphs: []string{"❤️", "🏥", "💊", "🩺", "🧬", "🍎", "🏃", "🧘", "😊", "⚕️"}},
}

// GlyphCategories returns the glyph picker data
func GlyphCategories() []GlyphCategory {
	out := make([]GlyphCategory, len(glyphCategories))
	for i, c := range glyphCategories {
		out[i] = GlyphCategory{Name: c.Name, Glyphs: append([]string{}, c.Glyphs...)}
	}
	return out
}

// glyphIcons maps each picker glyph onto its icon in the embedded icon font
var glyphIcons = map[string]rune{
	// Business
	"💼": 0xf0b1, // briefcase
	"📈": 0xf201, // line-chart
	"💰": 0xf0d6, // money
	"🏢": 0xf1ad, // building
	"📊": 0xf080, // bar-chart
	"⚡": 0xf0e7, // bolt
	"🎯": 0xf140, // bullseye
	"🔧": 0xf0ad, // wrench
	"📋": 0xf0ea, // clipboard
	"💡": 0xf0eb, // lightbulb
	// Technology
	"💻":  0xf109, // laptop
	"📱":  0xf10b, // mobile
	"⚙️": 0xf013, // cog
	"🔌":  0xf1e6, // plug
	"📡":  0xf1eb, // wifi
	"🛠️": 0xf085, // cogs
	"🖥️": 0xf108, // desktop
	"🔒":  0xf023, // lock
	"☁️": 0xf0c2, // cloud
	"🚀":  0xf135, // rocket
	// Education
	"📚":   0xf02d, // book
	"🎓":   0xf19d, // graduation-cap
	"✏️":  0xf040, // pencil
	"📝":   0xf044, // pencil-square
	"🔬":   0xf0c3, // flask
	"🧮":   0xf1ec, // calculator
	"📐":   0xf125, // crop
	"🎨":   0xf1fc, // paint-brush
	"🏫":   0xf19c, // university
	"👨‍🏫": 0xf007, // user
	// Health
	"❤️": 0xf004, // heart
	"🏥":  0xf0f8, // hospital
	"💊":  0xf0fa, // medkit
	"🩺":  0xf0f1, // stethoscope
	"🧬":  0xf21e, // heartbeat
	"🍎":  0xf179, // apple
	"🏃":  0xf183, // male
	"🧘":  0xf29a, // universal-access
	"😊":  0xf118, // smile
	"⚕️": 0xf0f0, // user-md
}

// GlyphIcon returns the icon font rune for a picker glyph. Glyphs outside the
// picker have no icon and are drawn as text.
func GlyphIcon(glyph string) (rune, bool) {
	r, ok := glyphIcons[glyph]
	return r, ok
}
