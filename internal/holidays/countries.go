package holidays

// Region is a sub-national area with its own extra holidays.
type Region struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CountryMeta is the static display metadata for a jurisdiction.
type CountryMeta struct {
	Code       string   `json:"code"`
	Label      string   `json:"label"`
	LabelLocal string   `json:"label_local"`
	Color      string   `json:"color"`
	Flag       string   `json:"flag"`
	Regions    []Region `json:"regions,omitempty"`
}

// FranceRegions lists the region keys France accepts in Options.Regions.
var FranceRegions = []Region{
	{Key: "AM", Label: "Alsace–Moselle"},
	{Key: "RE", Label: "La Réunion"},
	{Key: "GP", Label: "Guadeloupe"},
	{Key: "MQ", Label: "Martinique"},
	{Key: "GF", Label: "Guyane"},
	{Key: "YT", Label: "Mayotte"},
	{Key: "NC", Label: "Nouvelle-Calédonie"},
	{Key: "PF", Label: "Polynésie française"},
	{Key: "WF", Label: "Wallis‑et‑Futuna"},
}

var countryMeta = []CountryMeta{
	{Code: "US", Label: "United States", LabelLocal: "United States", Color: "#2563eb", Flag: "🇺🇸"},
	{Code: "CA", Label: "Canada", LabelLocal: "Canada", Color: "#dc2626", Flag: "🇨🇦"},
	{Code: "MX", Label: "Mexico", LabelLocal: "México", Color: "#15803d", Flag: "🇲🇽"},
	{Code: "BR", Label: "Brazil", LabelLocal: "Brasil", Color: "#22c55e", Flag: "🇧🇷"},
	{Code: "AR", Label: "Argentina", LabelLocal: "Argentina", Color: "#38bdf8", Flag: "🇦🇷"},
	{Code: "CL", Label: "Chile", LabelLocal: "Chile", Color: "#b91c1c", Flag: "🇨🇱"},
	{Code: "CO", Label: "Colombia", LabelLocal: "Colombia", Color: "#eab308", Flag: "🇨🇴"},
	{Code: "PE", Label: "Peru", LabelLocal: "Perú", Color: "#e11d48", Flag: "🇵🇪"},

	{Code: "UK", Label: "United Kingdom", LabelLocal: "United Kingdom", Color: "#f43f5e", Flag: "🇬🇧"},
	{Code: "IE", Label: "Ireland", LabelLocal: "Ireland", Color: "#16a34a", Flag: "🇮🇪"},
	{Code: "FR", Label: "France", LabelLocal: "France", Color: "#3b82f6", Flag: "🇫🇷", Regions: FranceRegions},
	{Code: "DE", Label: "Germany", LabelLocal: "Deutschland", Color: "#1e293b", Flag: "🇩🇪"},
	{Code: "ES", Label: "Spain", LabelLocal: "España", Color: "#f59e0b", Flag: "🇪🇸"},
	{Code: "IT", Label: "Italy", LabelLocal: "Italia", Color: "#059669", Flag: "🇮🇹"},
	{Code: "PT", Label: "Portugal", LabelLocal: "Portugal", Color: "#166534", Flag: "🇵🇹"},
	{Code: "NL", Label: "Netherlands", LabelLocal: "Nederland", Color: "#f97316", Flag: "🇳🇱"},
	{Code: "BE", Label: "Belgium", LabelLocal: "België", Color: "#facc15", Flag: "🇧🇪"},
	{Code: "CH", Label: "Switzerland", LabelLocal: "Schweiz", Color: "#ef4444", Flag: "🇨🇭"},
	{Code: "AT", Label: "Austria", LabelLocal: "Österreich", Color: "#be123c", Flag: "🇦🇹"},
	{Code: "PL", Label: "Poland", LabelLocal: "Polska", Color: "#f87171", Flag: "🇵🇱"},
	{Code: "CZ", Label: "Czechia", LabelLocal: "Česko", Color: "#1d4ed8", Flag: "🇨🇿"},
	{Code: "SE", Label: "Sweden", LabelLocal: "Sverige", Color: "#0284c7", Flag: "🇸🇪"},
	{Code: "NO", Label: "Norway", LabelLocal: "Norge", Color: "#991b1b", Flag: "🇳🇴"},
	{Code: "DK", Label: "Denmark", LabelLocal: "Danmark", Color: "#c2410c", Flag: "🇩🇰"},
	{Code: "FI", Label: "Finland", LabelLocal: "Suomi", Color: "#1e40af", Flag: "🇫🇮"},
	{Code: "GR", Label: "Greece", LabelLocal: "Ελλάδα", Color: "#0ea5e9", Flag: "🇬🇷"},
	{Code: "RO", Label: "Romania", LabelLocal: "România", Color: "#ca8a04", Flag: "🇷🇴"},
	{Code: "HU", Label: "Hungary", LabelLocal: "Magyarország", Color: "#4d7c0f", Flag: "🇭🇺"},
	{Code: "EE", Label: "Estonia", LabelLocal: "Eesti", Color: "#0369a1", Flag: "🇪🇪"},
	{Code: "UA", Label: "Ukraine", LabelLocal: "Україна", Color: "#fbbf24", Flag: "🇺🇦"},

	{Code: "KR", Label: "Korea", LabelLocal: "대한민국", Color: "#0ea5e9", Flag: "🇰🇷"},
	{Code: "JP", Label: "Japan", LabelLocal: "日本", Color: "#ef4444", Flag: "🇯🇵"},
	{Code: "CN", Label: "China", LabelLocal: "中国", Color: "#b91c1c", Flag: "🇨🇳"},
	{Code: "IN", Label: "India", LabelLocal: "भारत", Color: "#f97316", Flag: "🇮🇳"},
	{Code: "SG", Label: "Singapore", LabelLocal: "Singapore", Color: "#e11d48", Flag: "🇸🇬"},
	{Code: "PH", Label: "Philippines", LabelLocal: "Pilipinas", Color: "#2563eb", Flag: "🇵🇭"},

	{Code: "AU", Label: "Australia", LabelLocal: "Australia", Color: "#f59e0b", Flag: "🇦🇺"},
	{Code: "NZ", Label: "New Zealand", LabelLocal: "Aotearoa New Zealand", Color: "#334155", Flag: "🇳🇿"},

	{Code: "TR", Label: "Türkiye", LabelLocal: "Türkiye", Color: "#dc2626", Flag: "🇹🇷"},
	{Code: "AE", Label: "United Arab Emirates", LabelLocal: "الإمارات", Color: "#047857", Flag: "🇦🇪"},
	{Code: "SA", Label: "Saudi Arabia", LabelLocal: "السعودية", Color: "#065f46", Flag: "🇸🇦"},

	{Code: "ZA", Label: "South Africa", LabelLocal: "South Africa", Color: "#15803d", Flag: "🇿🇦"},
	{Code: "NG", Label: "Nigeria", LabelLocal: "Nigeria", Color: "#16a34a", Flag: "🇳🇬"},
	{Code: "KE", Label: "Kenya", LabelLocal: "Kenya", Color: "#7f1d1d", Flag: "🇰🇪"},
	{Code: "EG", Label: "Egypt", LabelLocal: "مصر", Color: "#a16207", Flag: "🇪🇬"},
}

var metaByCode = func() map[string]CountryMeta {
	m := make(map[string]CountryMeta, len(countryMeta))
	for _, c := range countryMeta {
		m[c.Code] = c
	}
	return m
}()

// Meta returns the metadata for code. Lookup is case insensitive.
func Meta(code string) (CountryMeta, bool) {
	c, ok := metaByCode[normalizeCode(code)]
	return c, ok
}

// AllMeta returns every jurisdiction's metadata, grouped by region.
func AllMeta() []CountryMeta {
	return append([]CountryMeta(nil), countryMeta...)
}
