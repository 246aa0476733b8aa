package patient

// FieldKind classifies an intake form field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEnum     FieldKind = "enum"
	KindDate     FieldKind = "date"
	KindTextarea FieldKind = "textarea"
)

// Field is one entry of the declarative intake form table. The same table
// drives validation and the published form schema, so the UI and the
// validator can never disagree about allowed values or defaults.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Allowed  []string  `json:"allowed,omitempty"`
	Default  string    `json:"default,omitempty"`
	Required bool      `json:"required"`
}

const normal = "Normal (सामान्य)"
const no = "No (नहीं)"

// Fields lists every intake form field in display order. Enumerated fields
// carry a sentinel default so a fresh draft is already valid for them; the
// seven profile fields without a default must be supplied explicitly.
var Fields = []Field{
	{Name: "name", Label: "Name", Kind: KindText, Required: true},
	{Name: "age", Label: "Age", Kind: KindText, Required: true},
	{Name: "gender", Label: "Gender", Kind: KindEnum, Required: true,
		Allowed: []string{"male", "female", "other"}},
	{Name: "weight", Label: "Weight (kg)", Kind: KindText, Required: true},
	{Name: "height", Label: "Height (cm)", Kind: KindText, Required: true},
	{Name: "diet", Label: "Diet", Kind: KindEnum, Required: true,
		Allowed: []string{"Vegetarian (शाकाहारी)", "Non-Vegetarian (मांसाहारी)", "Vegan (वीगन)"},
		Default: "Vegetarian (शाकाहारी)"},
	{Name: "visitDate", Label: "Date of Visit", Kind: KindDate, Required: true},
	{Name: "location", Label: "Location", Kind: KindText, Required: true},

	{Name: "mal", Label: "Stool (मल)", Kind: KindEnum, Required: true,
		Allowed: []string{normal, "Vibandh (Constipation) (विबंध (कब्ज))", "Atisar (Diarrhea) (अतिसार (दस्त))"},
		Default: normal},
	{Name: "mutra", Label: "Urine (मूत्र)", Kind: KindEnum, Required: true,
		Allowed: []string{normal, "Dah Yukt (Burning) (दाह युक्त)", "Rakt Yukt (With Blood) (रक्त युक्त)"},
		Default: normal},
	{Name: "kshudha", Label: "Appetite (क्षुधा)", Kind: KindEnum, Required: true,
		Allowed: []string{normal, "Decreased (कम हुई)", "Increased (बढ़ी हुई)"},
		Default: normal},
	{Name: "trishna", Label: "Thirst (तृष्णा)", Kind: KindEnum, Required: true,
		Allowed: []string{normal, "Decreased (कम हुई)", "Increased (बढ़ी हुई)"},
		Default: normal},
	{Name: "nidra", Label: "Sleep (निद्रा)", Kind: KindEnum, Required: true,
		Allowed: []string{normal, "Khandit (Disturbed) (खंडित)", "Anidra (Sleeplessness) (अनिद्रा)"},
		Default: normal},
	{Name: "jivha", Label: "Tongue (जिह्वा)", Kind: KindEnum, Required: true,
		Allowed: []string{"Niram (Clear) (निराम)", "Saam (Coated) (साम)"},
		Default: "Niram (Clear) (निराम)"},
	{Name: "manoSwabhav", Label: "Mental State (मनो स्वभाव)", Kind: KindEnum, Required: true,
		Allowed: []string{"Calm (शांत)", "Chidchida (Irritable) (चिड़चिड़ा)", "Udaseen (Depressed) (उदासीन)"},
		Default: "Calm (शांत)"},
	{Name: "otherComplaints", Label: "Other Complaints", Kind: KindTextarea, Required: false},
	{Name: "arsh", Label: "Arsh (अर्श)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "Yes, Dry (हाँ, शुष्क)", "Yes, Bleeding (हाँ, रक्तस्रावी)"},
		Default: no},
	{Name: "ashmari", Label: "Ashmari (अश्मरी)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "Yes, with Pain (हाँ, दर्द के साथ)", "Yes, History (हाँ, पुराना इतिहास)"},
		Default: no},
	{Name: "kushtha", Label: "Kushtha (कुष्ठ)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "Dry Eczema (शुष्क एक्जिमा)", "Psoriasis (सोरायसिस)", "Acne/Pimples (मुंहासे)"},
		Default: no},
	{Name: "prameha", Label: "Prameha (प्रमेह)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "Increased Frequency (बार-बार पेशाब आना)", "Family History (पारिवारिक इतिहास)"},
		Default: no},
	{Name: "grahani", Label: "Grahani (ग्रहणी)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "IBS (आईबीएस)", "Indigestion (अपच)"},
		Default: no},
	{Name: "shotha", Label: "Shotha (शोथ)", Kind: KindEnum, Required: true,
		Allowed: []string{no, "Localized (स्थानीय)", "Generalized (व्यापक)"},
		Default: no},
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		idx[f.Name] = f
	}
	return idx
}()

// FieldByName looks up a form field definition.
func FieldByName(name string) (Field, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}
