package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SymptomInput menyimpan teks mentah tiap field selama form diisi. String kosong berarti
// field belum diisi.
type SymptomInput struct {
	raw map[Field]string
}

func NewSymptomInput() *SymptomInput {
	return &SymptomInput{raw: make(map[Field]string, len(fieldSpecs))}
}

func (in *SymptomInput) Set(f Field, raw string) {
	if raw == "" {
		delete(in.raw, f)
		return
	}
	in.raw[f] = raw
}

func (in *SymptomInput) Get(f Field) string {
	return in.raw[f]
}

func (in *SymptomInput) Clear() {
	in.raw = make(map[Field]string, len(fieldSpecs))
}

func (in *SymptomInput) IsEmpty() bool {
	return len(in.raw) == 0
}

// Values mengembalikan salinan seluruh field, termasuk yang kosong.
func (in *SymptomInput) Values() map[string]string {
	out := make(map[string]string, len(fieldSpecs))
	for _, fs := range fieldSpecs {
		out[string(fs.Key)] = in.raw[fs.Key]
	}
	return out
}

// ParseNumber mengubah teks mentah menjadi angka hingga (finite).
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}

// Payload adalah body request ke layanan prediksi. Semua key selalu ada; field kosong
// dikirim sebagai null.
type Payload struct {
	Age  *float64 `json:"age"`
	BP   *float64 `json:"bp"`
	SG   *float64 `json:"sg"`
	BGR  *float64 `json:"bgr"`
	BU   *float64 `json:"bu"`
	SC   *float64 `json:"sc"`
	Sod  *float64 `json:"sod"`
	Pot  *float64 `json:"pot"`
	Hemo *float64 `json:"hemo"`
	PCV  *float64 `json:"pcv"`
	WBCC *float64 `json:"wbcc"`
	RBCC *float64 `json:"rbcc"`
}

func (p *Payload) slot(f Field) **float64 {
	switch f {
	case FieldAge:
		return &p.Age
	case FieldBP:
		return &p.BP
	case FieldSG:
		return &p.SG
	case FieldBGR:
		return &p.BGR
	case FieldBU:
		return &p.BU
	case FieldSC:
		return &p.SC
	case FieldSod:
		return &p.Sod
	case FieldPot:
		return &p.Pot
	case FieldHemo:
		return &p.Hemo
	case FieldPCV:
		return &p.PCV
	case FieldWBCC:
		return &p.WBCC
	case FieldRBCC:
		return &p.RBCC
	}
	return nil
}

// Set mengisi nilai field; v nil berarti null.
func (p *Payload) Set(f Field, v *float64) {
	if s := p.slot(f); s != nil {
		if v == nil {
			*s = nil
			return
		}
		val := *v
		*s = &val
	}
}

func (p Payload) Value(f Field) *float64 {
	if s := p.slot(f); s != nil {
		return *s
	}
	return nil
}
