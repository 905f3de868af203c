package color

import "strings"

// Category groups presets for display. It carries no behaviour.
type Category string

const (
	MorandiLight   Category = "Morandi Light (Soft & Muted)"
	MorandiDark    Category = "Morandi Dark (Deep & Elegant)"
	ClassicPremium Category = "Classic Premium (Chinese & Dunhuang)"
)

// Categories in display order.
var Categories = []Category{MorandiLight, MorandiDark, ClassicPremium}

// Language selects which preset name is shown.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Preset is a curated base colour.
type Preset struct {
	Name      string
	LocalName string
	Hex       string
	Category  Category
}

// DisplayName returns the name for lang, falling back to English.
func (p Preset) DisplayName(lang Language) string {
	if lang == Chinese && p.LocalName != "" {
		return p.LocalName
	}
	return p.Name
}

// Slug is the lowercase, dash separated English name used on the command line.
func (p Preset) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")
}

// Polarity of the preset's hex value.
func (p Preset) Polarity() Polarity {
	pol, _ := PolarityOf(p.Hex)
	return pol
}

// Catalog is the single built-in preset table, used both for generation and display.
var Catalog = []Preset{
	{Name: "Haze Blue", LocalName: "雾霾蓝", Hex: "#93a2ba", Category: MorandiLight},
	{Name: "Sage Green", LocalName: "鼠尾草绿", Hex: "#bccfbf", Category: MorandiLight},
	{Name: "Bean Paste Pink", LocalName: "豆沙粉", Hex: "#e4c6c6", Category: MorandiLight},
	{Name: "Oatmeal", LocalName: "燕麦色", Hex: "#ded7c8", Category: MorandiLight},
	{Name: "Lilac", LocalName: "藕荷紫", Hex: "#cdbfd4", Category: MorandiLight},
	{Name: "Glacier Gray", LocalName: "冰川灰", Hex: "#c4d3d9", Category: MorandiLight},
	{Name: "Almond Yellow", LocalName: "杏仁黄", Hex: "#f0e6cc", Category: MorandiLight},
	{Name: "Linen", LocalName: "亚麻色", Hex: "#e6dccd", Category: MorandiLight},
	{Name: "Dusty Orange", LocalName: "脏橘色", Hex: "#e8c3b0", Category: MorandiLight},
	{Name: "Milk Tea", LocalName: "奶茶色", Hex: "#d6c8b5", Category: MorandiLight},

	{Name: "Iron Gray", LocalName: "铁灰色", Hex: "#5d6169", Category: MorandiDark},
	{Name: "Prussian Blue Gray", LocalName: "普鲁士蓝灰", Hex: "#4a5d70", Category: MorandiDark},
	{Name: "Olive Gray", LocalName: "橄榄灰绿", Hex: "#5e665b", Category: MorandiDark},
	{Name: "Burgundy Gray", LocalName: "勃艮第灰红", Hex: "#705353", Category: MorandiDark},
	{Name: "Smoky Purple", LocalName: "烟熏紫", Hex: "#61596b", Category: MorandiDark},
	{Name: "Deep Sea Blue", LocalName: "深海蓝灰", Hex: "#455666", Category: MorandiDark},
	{Name: "Caramel Brown", LocalName: "焦糖褐灰", Hex: "#806a5e", Category: MorandiDark},
	{Name: "Forest Gray", LocalName: "森林灰绿", Hex: "#48594e", Category: MorandiDark},
	{Name: "Slate Rock", LocalName: "岩石灰", Hex: "#585f63", Category: MorandiDark},
	{Name: "Eggplant Gray", LocalName: "茄皮紫灰", Hex: "#5e5363", Category: MorandiDark},

	{Name: "Sky Cyan", LocalName: "天青", Hex: "#b5cece", Category: ClassicPremium},
	{Name: "Moon White", LocalName: "月白", Hex: "#d6ecf0", Category: ClassicPremium},
	{Name: "Crab Shell Green", LocalName: "蟹壳青", Hex: "#bbcdc5", Category: ClassicPremium},
	{Name: "Lovesick Gray", LocalName: "相思灰", Hex: "#61649f", Category: ClassicPremium},
	{Name: "Agarwood", LocalName: "沉香", Hex: "#867069", Category: ClassicPremium},
	{Name: "Muted Cinnabar", LocalName: "朱砂红-灰", Hex: "#9a4c39", Category: ClassicPremium},
	{Name: "Mineral Green", LocalName: "石绿", Hex: "#4a8f78", Category: ClassicPremium},
	{Name: "Lapis Blue", LocalName: "青金石", Hex: "#5d6185", Category: ClassicPremium},
	{Name: "Desert Gold", LocalName: "大漠金", Hex: "#c9b780", Category: ClassicPremium},
	{Name: "Tea White", LocalName: "茶白", Hex: "#f3f4e6", Category: ClassicPremium},
}

// Matching filters presets down to those of the given polarity, preserving order.
func Matching(presets []Preset, polarity Polarity) []Preset {
	var out []Preset
	for _, p := range presets {
		if p.Polarity() == polarity {
			out = append(out, p)
		}
	}
	return out
}

// InCategory returns the catalog presets of one category.
func InCategory(category Category) []Preset {
	var out []Preset
	for _, p := range Catalog {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindPreset looks a preset up by slug, English name, local name or hex value.
func FindPreset(query string) (Preset, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Preset{}, false
	}
	canonical, hexErr := Canonicalize(q)

	for _, p := range Catalog {
		switch {
		case strings.EqualFold(p.Slug(), q),
			strings.EqualFold(p.Name, q),
			p.LocalName == q,
			hexErr == nil && p.Hex == canonical:
			return p, true
		}
	}
	return Preset{}, false
}
