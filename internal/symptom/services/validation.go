package services

import "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"

// ValidateInput memeriksa field yang terisi sesuai urutan tabel dan berhenti di kegagalan
// pertama. Jika lolos, hasilnya adalah payload dengan null untuk field kosong.
func ValidateInput(in *models.SymptomInput) (models.Payload, error) {
	var payload models.Payload
	for _, fs := range models.Fields() {
		raw := in.Get(fs.Key)
		if raw == "" {
			continue
		}
		v, err := models.ParseNumber(raw)
		if err != nil || !fs.Contains(v) {
			return models.Payload{}, &ValidationError{Field: fs.Key, Label: fs.Label, Min: fs.Min, Max: fs.Max}
		}
		payload.Set(fs.Key, &v)
	}
	return payload, nil
}
