package wizards

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	wizardRepo "github.com/m04kA/SMC-BookingWizard/internal/infra/storage/wizard"
	"github.com/m04kA/SMC-BookingWizard/internal/service/catalog"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeMetrics struct {
	mu                 sync.Mutex
	active             int
	transitions        map[string]int
	validationFailures map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		transitions:        make(map[string]int),
		validationFailures: make(map[string]int),
	}
}

func (m *fakeMetrics) SetActiveWizards(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = n
}

func (m *fakeMetrics) ObserveStepTransition(step string, advanced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if advanced {
		m.transitions[step+":ok"]++
	} else {
		m.transitions[step+":locked"]++
	}
}

func (m *fakeMetrics) ObserveValidationFailure(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures[field]++
}

// blockingSubmitter держит подтверждение, пока не закрыт release
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSubmitter) Submit(_ context.Context, _ domain.BookingRecord) error {
	close(s.started)
	<-s.release
	return nil
}

// понедельник, 19 октября 2026, 15:00
var monday = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	repo    *wizardRepo.Repository
	metrics *fakeMetrics
}

func newFixture(t *testing.T, submitter wizard.Submitter, maxSessions int) *fixture {
	t.Helper()

	cat, err := catalog.NewService(catalog.Options{ClosedDay: time.Sunday}, logger.NewNop())
	require.NoError(t, err)
	cat.WithTimeProvider(fixedClock{now: monday})

	if submitter == nil {
		submitter = wizard.SubmitterFunc(func(context.Context, domain.BookingRecord) error { return nil })
	}

	repo := wizardRepo.NewRepository(maxSessions)
	m := newFakeMetrics()
	svc := NewService(repo, cat, submitter, m, logger.NewNop())

	return &fixture{svc: svc, repo: repo, metrics: m}
}

func (f *fixture) create(t *testing.T) string {
	t.Helper()
	resp, err := f.svc.Create(context.Background())
	require.NoError(t, err)
	return resp.ID
}

func (f *fixture) fillToDetails(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.SelectDate(ctx, id, models.SelectDateRequest{Date: "2026-10-20"})
	require.NoError(t, err)
	_, err = f.svc.SelectTimeSlot(ctx, id, models.SelectTimeSlotRequest{TimeSlot: "10:00"})
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, id, models.SelectServiceRequest{ServiceID: "haircut"})
	require.NoError(t, err)
}

var janeRequest = models.CustomerRequest{Name: "Jane Smith", Email: "jane@example.com", Phone: "(555) 123-4567"}

func TestCreate(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp, err := f.svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "date", resp.Step)
	assert.False(t, resp.Busy)
	assert.False(t, resp.CanAdvance)
	assert.Equal(t, []string{"date"}, resp.ReachableSteps)
	assert.Nil(t, resp.Record.Date)
	assert.Nil(t, resp.Record.Customer)
	assert.Equal(t, 1, f.metrics.active)
}

func TestCreate_TooManyWizards(t *testing.T) {
	f := newFixture(t, nil, 1)
	f.create(t)

	_, err := f.svc.Create(context.Background())
	assert.ErrorIs(t, err, ErrTooManyWizards)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t, nil, 0)

	_, err := f.svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrWizardNotFound)
}

func TestSelectDate(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{name: "tomorrow", date: "2026-10-20"},
		{name: "today", date: "2026-10-19"},
		{name: "yesterday", date: "2026-10-18", wantErr: ErrDateNotSelectable},
		{name: "closed sunday", date: "2026-10-25", wantErr: ErrDateNotSelectable},
		{name: "bad format", date: "20.10.2026", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.SelectDate(ctx, id, models.SelectDateRequest{Date: tt.date})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp.Record.Date)
			assert.Equal(t, tt.date, *resp.Record.Date)
			assert.Equal(t, "date", resp.Step, "selection does not advance")
			assert.True(t, resp.CanAdvance)
		})
	}
}

func TestSelectTimeSlotAndService(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.SelectTimeSlot(ctx, id, models.SelectTimeSlotRequest{TimeSlot: "12:00"})
	assert.ErrorIs(t, err, ErrTimeSlotNotFound, "lunch gap is not a slot")

	_, err = f.svc.SelectTimeSlot(ctx, id, models.SelectTimeSlotRequest{TimeSlot: "noon"})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = f.svc.SelectService(ctx, id, models.SelectServiceRequest{ServiceID: "massage"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f.fillToDetails(t, id)

	resp, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, resp.Record.TimeSlot)
	assert.Equal(t, "10:00", *resp.Record.TimeSlot)
	require.NotNil(t, resp.Record.Service)
	assert.Equal(t, "haircut", resp.Record.Service.ID)
	require.NotNil(t, resp.Record.EndTime)
	assert.Equal(t, "10:30", *resp.Record.EndTime)
	assert.Equal(t, []string{"date", "time", "service", "details"}, resp.ReachableSteps)
}

func TestAdvanceTo(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	resp, err := f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{})
	require.NoError(t, err)
	assert.False(t, resp.Advanced, "time requires a date")
	assert.Equal(t, "date", resp.Wizard.Step)
	assert.Equal(t, 1, f.metrics.transitions["time:locked"])

	f.fillToDetails(t, id)

	resp, err = f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: "details"})
	require.NoError(t, err)
	assert.True(t, resp.Advanced)
	assert.Equal(t, "details", resp.Wizard.Step)

	resp, err = f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: "confirm"})
	require.NoError(t, err)
	assert.False(t, resp.Advanced, "confirm requires customer")

	_, err = f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: "payment"})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestBack_KeepsRecord(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	f.fillToDetails(t, id)
	_, err := f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: "service"})
	require.NoError(t, err)

	before, err := f.svc.Get(ctx, id)
	require.NoError(t, err)

	resp, err := f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Advanced)
	assert.Equal(t, "time", resp.Wizard.Step)

	resp, err = f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "date", resp.Wizard.Step)

	resp, err = f.svc.Back(ctx, id)
	require.NoError(t, err)
	assert.False(t, resp.Advanced, "date is the first step")

	for _, step := range []string{"time", "service"} {
		_, err = f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: step})
		require.NoError(t, err)
	}

	after, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Record, after.Record)
	assert.Equal(t, "service", after.Step)
}

func TestValidateField(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	resp, err := f.svc.ValidateField(ctx, id, models.ValidateFieldRequest{Field: "email", Value: "invalid-email"})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, validation.MsgEmailInvalid, resp.Message)
	assert.Equal(t, 1, f.metrics.validationFailures["email"])

	resp, err = f.svc.ValidateField(ctx, id, models.ValidateFieldRequest{Field: "phone", Value: "(555) 123-4567"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Message)

	_, err = f.svc.ValidateField(ctx, id, models.ValidateFieldRequest{Field: "age", Value: "42"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = f.svc.ValidateField(ctx, "missing", models.ValidateFieldRequest{Field: "name", Value: "Jo"})
	assert.ErrorIs(t, err, ErrWizardNotFound)
}

func TestSubmitCustomer(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	_, err := f.svc.SubmitCustomer(ctx, id, janeRequest)
	assert.ErrorIs(t, err, ErrStepLocked, "service is not selected yet")

	f.fillToDetails(t, id)

	_, err = f.svc.SubmitCustomer(ctx, id, models.CustomerRequest{Name: "J", Email: "jane", Phone: "123"})
	var validationErrs validation.Errors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, map[string]string{
		"name":  validation.MsgNameTooShort,
		"email": validation.MsgEmailInvalid,
		"phone": validation.MsgPhoneInvalid,
	}, validationErrs.ToMap())
	assert.Equal(t, 1, f.metrics.validationFailures["phone"])

	req := janeRequest
	req.Notes = "Window seat"
	resp, err := f.svc.SubmitCustomer(ctx, id, req)
	require.NoError(t, err)
	assert.Equal(t, "confirm", resp.Step)
	require.NotNil(t, resp.Record.Customer)
	assert.Equal(t, "Jane Smith", resp.Record.Customer.Name)
	assert.Equal(t, models.CustomerForm{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: "(555) 123-4567",
		Notes: "Window seat",
	}, resp.CustomerForm)
}

func TestReset(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	f.fillToDetails(t, id)

	first, err := f.svc.Reset(ctx, id)
	require.NoError(t, err)
	second, err := f.svc.Reset(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "date", second.Step)
	assert.Equal(t, models.RecordResponse{}, second.Record)
}

func TestMutationsWhileBusy(t *testing.T) {
	submitter := &blockingSubmitter{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, submitter, 0)
	id := f.create(t)
	ctx := context.Background()

	f.fillToDetails(t, id)
	_, err := f.svc.SubmitCustomer(ctx, id, janeRequest)
	require.NoError(t, err)

	w, err := f.repo.GetByID(ctx, id)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := w.ConfirmBooking(ctx)
		done <- err
	}()
	<-submitter.started

	_, err = f.svc.SelectDate(ctx, id, models.SelectDateRequest{Date: "2026-10-21"})
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = f.svc.AdvanceTo(ctx, id, models.AdvanceRequest{Step: "date"})
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = f.svc.Back(ctx, id)
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = f.svc.Reset(ctx, id)
	assert.ErrorIs(t, err, ErrWizardBusy)
	assert.ErrorIs(t, f.svc.Delete(ctx, id), ErrWizardBusy)

	resp, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Busy)
	assert.False(t, resp.CanAdvance)

	close(submitter.release)
	require.NoError(t, <-done)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, nil, 0)
	id := f.create(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, id))
	assert.Equal(t, 0, f.metrics.active)

	_, err := f.svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrWizardNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, id), ErrWizardNotFound)
}

func TestCleanupIdle(t *testing.T) {
	f := newFixture(t, nil, 0)
	f.create(t)
	f.create(t)

	result, err := f.svc.CleanupIdle(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
	assert.Equal(t, 2, result.Active)

	f.svc.WithTimeProvider(fixedClock{now: time.Now().Add(2 * time.Hour)})

	result, err = f.svc.CleanupIdle(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, 0, result.Active)
	assert.Equal(t, 0, f.metrics.active)
}
