package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Nour60555/Graduation-Project-KDD/internal/symptom/models"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Submission adalah payload yang terkirim beserta hasil yang diterima.
type Submission struct {
	Payload models.Payload
	Outcome models.Outcome
}

// View adalah snapshot workflow untuk ditampilkan ke client.
type View struct {
	State      State             `json:"state"`
	Values     map[string]string `json:"values"`
	Outcome    *models.Outcome   `json:"outcome,omitempty"`
	Error      string            `json:"error,omitempty"`
	ErrorKind  string            `json:"error_kind,omitempty"`
	ErrorField string            `json:"error_field,omitempty"`
	Pending    bool              `json:"pending"`
}

// Workflow memegang state satu form symptom checker. Hanya satu request ke layanan
// prediksi yang boleh berjalan per instance.
type Workflow struct {
	predictor Predictor
	timeout   time.Duration

	mu         sync.Mutex
	state      State
	input      *models.SymptomInput
	outcome    *models.Outcome
	err        error
	inFlight   bool
	generation uint64
}

func NewWorkflow(predictor Predictor, timeout time.Duration) *Workflow {
	return &Workflow{
		predictor: predictor,
		timeout:   timeout,
		state:     StateEditing,
		input:     models.NewSymptomInput(),
	}
}

// normalizeEdit mencari field. Jika typed, karakter non-angka dibuang untuk field
// digits-only seperti yang dilakukan input form saat user mengetik.
func normalizeEdit(key, raw string, typed bool) (models.FieldSpec, string, error) {
	fs, ok := models.LookupField(key)
	if !ok {
		return models.FieldSpec{}, "", fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if typed && fs.DigitsOnly {
		raw = utils.DigitsOnly(raw)
	}
	return fs, raw, nil
}

// leaveResultLocked membuang hasil atau error yang sedang ditampilkan saat user mulai mengedit lagi.
func (w *Workflow) leaveResultLocked() {
	if w.state == StateSucceeded || w.state == StateFailed {
		w.state = StateEditing
		w.outcome = nil
		w.err = nil
	}
}

// Edit mengganti nilai satu field dengan teks yang diketik user.
func (w *Workflow) Edit(key, raw string) error {
	fs, raw, err := normalizeEdit(key, raw, true)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.leaveResultLocked()
	w.input.Set(fs.Key, raw)
	return nil
}

// Fill mengisi banyak field sekaligus apa adanya, tanpa membuang karakter, sehingga
// nilai seperti "-80" atau "1.5" divalidasi sebagai angka itu sendiri.
// Jika ada key yang tidak dikenal, tidak ada yang diubah.
func (w *Workflow) Fill(values map[string]string) error {
	targets := make([]models.FieldSpec, 0, len(values))
	normalized := make([]string, 0, len(values))
	for key, raw := range values {
		fs, raw, err := normalizeEdit(key, raw, false)
		if err != nil {
			return err
		}
		targets = append(targets, fs)
		normalized = append(normalized, raw)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.leaveResultLocked()
	for i, fs := range targets {
		w.input.Set(fs.Key, normalized[i])
	}
	return nil
}

// Submit memvalidasi input lalu mengirimkannya ke layanan prediksi. Ini satu-satunya
// titik blocking; submit kedua selama request berjalan ditolak dengan ErrSubmitInProgress.
func (w *Workflow) Submit(ctx context.Context) (*Submission, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	w.state = StateValidating
	w.outcome = nil
	w.err = nil
	payload, err := ValidateInput(w.input)
	if err != nil {
		w.state = StateFailed
		w.err = err
		w.mu.Unlock()
		return nil, err
	}

	w.state = StateSubmitting
	w.inFlight = true
	gen := w.generation
	w.mu.Unlock()

	result, err := w.predict(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if gen != w.generation {
		return nil, ErrAttemptDiscarded
	}
	if err != nil {
		w.state = StateFailed
		w.err = err
		return nil, err
	}

	outcome := models.NewOutcome(result)
	w.state = StateSucceeded
	w.outcome = &outcome
	w.input.Clear()
	return &Submission{Payload: payload, Outcome: outcome}, nil
}

func (w *Workflow) predict(ctx context.Context, payload models.Payload) (models.PredictionResult, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	result, err := w.predictor.Predict(ctx, payload)
	if err != nil {
		var se *ServiceError
		if !errors.As(err, &se) {
			err = &ServiceError{Message: err.Error(), Err: err}
		}
		return models.PredictionResult{}, err
	}
	return result, nil
}

// Reset mengosongkan input dan membuang hasil maupun error. Request yang masih berjalan
// tetap memegang guard sampai selesai, tetapi hasilnya diabaikan.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	w.state = StateEditing
	w.input.Clear()
	w.outcome = nil
	w.err = nil
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

func (w *Workflow) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		State:   w.state,
		Values:  w.input.Values(),
		Pending: w.inFlight,
	}
	if w.outcome != nil {
		o := *w.outcome
		v.Outcome = &o
	}
	if w.err != nil {
		v.Error = w.err.Error()
		v.ErrorKind = ErrorKind(w.err)
		var ve *ValidationError
		if errors.As(w.err, &ve) {
			v.ErrorField = string(ve.Field)
		}
	}
	return v
}
