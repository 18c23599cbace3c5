// Package wizard runs the interactive appointment booking flow in the
// terminal. Screens collect answers and a booking.Machine decides when the
// flow may move on.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/hilom/cmd/hilom/wizard/screens"
	"github.com/mrsinham/hilom/internal/booking"
	"github.com/mrsinham/hilom/internal/catalog"
	"github.com/rs/zerolog"
)

// Deps are the collaborators of a wizard run.
type Deps struct {
	Catalog *catalog.Catalog
	Saver   booking.Saver
	Clock   func() time.Time
	Rand    *rand.Rand
	Logger  zerolog.Logger
}

func (d *Deps) withDefaults() {
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Rand == nil {
		seed := uint64(d.Clock().UnixNano())
		d.Rand = rand.New(rand.NewPCG(seed, seed>>32))
	}
}

// Wizard is the bubbletea model of one booking.
type Wizard struct {
	ctx     context.Context
	deps    Deps
	machine *booking.Machine

	// Screen instances
	step       screens.Step
	completion *screens.CompletionScreen

	// Shown in the same order for the whole session
	doctors []catalog.Doctor
	offered []booking.TimeSlot

	// Kept for the answers file, the machine drops it with the draft
	location LocationAnswers

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard positioned on the location step.
func NewWizard(ctx context.Context, deps Deps) *Wizard {
	deps.withDefaults()

	doctors := deps.Catalog.Doctors()
	deps.Rand.Shuffle(len(doctors), func(i, j int) {
		doctors[i], doctors[j] = doctors[j], doctors[i]
	})

	w := &Wizard{
		ctx:     ctx,
		deps:    deps,
		machine: booking.NewMachine(deps.Catalog, deps.Saver, booking.WithClock(deps.Clock)),
		doctors: doctors,
		offered: booking.OfferedSlots(deps.Rand),
	}
	w.step = w.screenFor(w.machine.Current())

	return w
}

// Current returns the booking step on screen.
func (w *Wizard) Current() booking.State { return w.machine.Current() }

// Cancelled reports whether the user left before booking.
func (w *Wizard) Cancelled() bool { return w.cancelled }

// Booked returns the appointment once the user accepted it.
func (w *Wizard) Booked() (booking.Appointment, bool) {
	if !w.finished {
		return booking.Appointment{}, false
	}
	return w.machine.Booked()
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.step.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	if w.completion != nil {
		w.completion.Update(msg)
		if w.completion.Done() {
			return w, tea.Quit
		}
		return w, nil
	}

	_, cmd := w.step.Update(msg)

	switch {
	case w.step.Cancelled():
		w.cancelled = true
		w.deps.Logger.Info().Str("step", w.machine.Current().String()).Msg("booking cancelled")
		return w, tea.Quit

	case w.step.Back():
		// Going back from the first step leaves the flow.
		if !w.machine.Back() {
			w.cancelled = true
			return w, tea.Quit
		}
		return w, w.enter()

	case w.step.Done():
		return w.submit()
	}

	return w, cmd
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch {
	case w.completion != nil:
		return w.completion.View()
	case w.cancelled:
		return "Booking cancelled.\n"
	}
	return w.step.View()
}

func (w *Wizard) submit() (tea.Model, tea.Cmd) {
	from := w.machine.Current()

	in, err := w.step.Input()
	if err == nil {
		err = w.machine.Advance(w.ctx, in)
	}
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			w.deps.Logger.Debug().Str("step", from.String()).Strs("fields", verr.FieldNames()).Msg("step rejected")
			return w, w.step.Reject(err)
		}
		w.err = err
		return w, tea.Quit
	}

	if loc, ok := in.(booking.LocationInput); ok {
		w.location = LocationAnswers{City: loc.City, Province: loc.Province, ZipCode: loc.ZipCode}
	}
	if w.machine.Current() == booking.StateDone {
		return w.complete()
	}

	w.deps.Logger.Debug().Str("from", from.String()).Str("to", w.machine.Current().String()).Msg("step advanced")
	return w, w.enter()
}

func (w *Wizard) complete() (tea.Model, tea.Cmd) {
	appt, _ := w.machine.Booked()
	res, _ := w.machine.Result()

	evt := w.deps.Logger.Info().
		Str("appointment_id", appt.ID.String()).
		Bool("stored", res.Stored).
		Bool("skipped", res.Skipped).
		Bool("audited", res.Audited)
	if res.StoreErr != nil {
		evt = evt.AnErr("store_error", res.StoreErr)
	}
	if res.AuditErr != nil {
		evt = evt.AnErr("audit_error", res.AuditErr)
	}
	evt.Msg("appointment booked")

	w.finished = true
	w.completion = screens.NewCompletionScreen(appt)
	return w, nil
}

// enter shows the screen of the machine's current step.
func (w *Wizard) enter() tea.Cmd {
	w.step = w.screenFor(w.machine.Current())

	cmds := []tea.Cmd{w.step.Init()}
	if w.width > 0 {
		_, cmd := w.step.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (w *Wizard) screenFor(state booking.State) screens.Step {
	draft := w.machine.Draft()
	cat := w.machine.Catalog()

	switch state {
	case booking.StateLocation:
		return screens.NewLocationScreen(draft)
	case booking.StateHospitalList:
		return screens.NewHospitalListScreen(cat.Hospitals(), draft.HospitalID, draft.City)
	case booking.StateHospitalDetail:
		h, _ := w.machine.Hospital()
		return screens.NewHospitalDetailScreen(h)
	case booking.StateDoctorSelect:
		h, _ := w.machine.Hospital()
		return screens.NewDoctorScreen(w.doctors, draft.DoctorID, h.Name)
	case booking.StatePersonalInfo:
		return screens.NewPersonalScreen(draft)
	case booking.StateSchedule:
		return screens.NewScheduleScreen(draft, w.machine.ScheduleFloor(), w.offered)
	case booking.StateConsultationType:
		return screens.NewConsultationScreen(draft)
	case booking.StateConfirmation:
		return screens.NewConfirmationScreen(draft, cat)
	}

	panic(fmt.Sprintf("wizard: no screen for %s", state))
}

// Outcome is what a wizard run produced.
type Outcome struct {
	Appointment booking.Appointment
	// Booked is false when the user cancelled.
	Booked bool
	// Answers replays the booking; nil unless Booked.
	Answers *Answers
}

// Outcome returns the result of the session so far.
func (w *Wizard) Outcome() Outcome {
	appt, ok := w.Booked()
	if !ok {
		return Outcome{}
	}
	return Outcome{
		Appointment: appt,
		Booked:      true,
		Answers:     AnswersFromAppointment(appt, w.location),
	}
}

// Run launches the booking wizard.
func Run(ctx context.Context, deps Deps) (Outcome, error) {
	wizard := NewWizard(ctx, deps)
	p := tea.NewProgram(wizard, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("running wizard: %w", err)
	}

	w, ok := finalModel.(*Wizard)
	if !ok {
		return Outcome{}, nil
	}
	if w.err != nil {
		return Outcome{}, w.err
	}

	return w.Outcome(), nil
}
