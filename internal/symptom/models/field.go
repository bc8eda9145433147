package models

// Field adalah key JSON dari satu hasil tes laboratorium.
type Field string

const (
	FieldAge  Field = "age"
	FieldBP   Field = "bp"
	FieldSG   Field = "sg"
	FieldBGR  Field = "bgr"
	FieldBU   Field = "bu"
	FieldSC   Field = "sc"
	FieldSod  Field = "sod"
	FieldPot  Field = "pot"
	FieldHemo Field = "hemo"
	FieldPCV  Field = "pcv"
	FieldWBCC Field = "wbcc"
	FieldRBCC Field = "rbcc"
)

const (
	GroupGeneral    = "General Info"
	GroupBloodTests = "Blood Tests"
	GroupCellCounts = "Cell Counts"
)

// FieldSpec mendeskripsikan satu field form beserta rentang nilai yang diterima (inklusif).
type FieldSpec struct {
	Key         Field   `json:"key"`
	Label       string  `json:"label"`
	Placeholder string  `json:"placeholder"`
	Group       string  `json:"group"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	DigitsOnly  bool    `json:"digits_only"`
}

// Urutan di sini juga urutan validasi.
var fieldSpecs = []FieldSpec{
	{Key: FieldAge, Label: "Age (years)", Placeholder: "e.g. 45", Group: GroupGeneral, Min: 1, Max: 120, DigitsOnly: true},
	{Key: FieldBP, Label: "Blood Pressure (mm Hg)", Placeholder: "e.g. 120", Group: GroupGeneral, Min: 30, Max: 250, DigitsOnly: true},
	{Key: FieldSG, Label: "Specific Gravity (1.005 - 1.025)", Placeholder: "e.g. 1.02", Group: GroupGeneral, Min: 1.005, Max: 1.025},
	{Key: FieldBGR, Label: "Blood Glucose Random (mg/dl)", Placeholder: "e.g. 90", Group: GroupBloodTests, Min: 1, Max: 1000},
	{Key: FieldBU, Label: "Blood Urea (mg/dl)", Placeholder: "e.g. 15", Group: GroupBloodTests, Min: 1, Max: 300},
	{Key: FieldSC, Label: "Serum Creatinine (mg/dl)", Placeholder: "e.g. 1.0", Group: GroupBloodTests, Min: 0.1, Max: 15},
	{Key: FieldSod, Label: "Sodium (mEq/L)", Placeholder: "e.g. 140", Group: GroupBloodTests, Min: 50, Max: 200},
	{Key: FieldPot, Label: "Potassium (mEq/L)", Placeholder: "e.g. 4.5", Group: GroupBloodTests, Min: 2, Max: 10},
	{Key: FieldHemo, Label: "Hemoglobin (g/dl)", Placeholder: "e.g. 16", Group: GroupBloodTests, Min: 3, Max: 20},
	{Key: FieldPCV, Label: "Packed Cell Volume (%)", Placeholder: "e.g. 48", Group: GroupCellCounts, Min: 10, Max: 60, DigitsOnly: true},
	{Key: FieldWBCC, Label: "White Blood Cell Count (/cmm)", Placeholder: "e.g. 8000", Group: GroupCellCounts, Min: 1000, Max: 25000, DigitsOnly: true},
	{Key: FieldRBCC, Label: "Red Blood Cells (million/cmm)", Placeholder: "e.g. 5", Group: GroupCellCounts, Min: 1, Max: 10},
}

// Fields mengembalikan salinan tabel field sesuai urutan form.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// LookupField mencari spesifikasi field berdasarkan key JSON-nya.
func LookupField(key string) (FieldSpec, bool) {
	for _, fs := range fieldSpecs {
		if string(fs.Key) == key {
			return fs, true
		}
	}
	return FieldSpec{}, false
}

// Contains melaporkan apakah v berada di dalam [Min, Max].
func (s FieldSpec) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

func FieldGroups() []string {
	return []string{GroupGeneral, GroupBloodTests, GroupCellCounts}
}

// DemoValues adalah data contoh tombol "Enter Test Data" di form.
func DemoValues() map[string]string {
	return map[string]string{
		"age": "45", "bp": "120", "sg": "1.02", "bgr": "90", "bu": "15", "sc": "1.0",
		"sod": "140", "pot": "4.5", "hemo": "16", "pcv": "48", "wbcc": "8000", "rbcc": "5",
	}
}

// SampleCase dipakai oleh CLI untuk smoke test endpoint prediksi.
type SampleCase struct {
	ID          int
	Description string
	Values      map[string]string
}

// SampleCases mengikuti test case bawaan layanan prediksi. Kasus CKD memakai sg 1.005
// karena 1.0 berada di luar rentang form.
func SampleCases() []SampleCase {
	return []SampleCase{
		{
			ID:          1,
			Description: "CKD-like",
			Values: map[string]string{
				"age": "20", "bp": "80", "sg": "1.005", "bgr": "120", "bu": "40", "sc": "1.5",
				"sod": "111", "pot": "2", "hemo": "15", "pcv": "40", "wbcc": "7000", "rbcc": "6",
			},
		},
		{ID: 2, Description: "Non-CKD-like", Values: DemoValues()},
	}
}
