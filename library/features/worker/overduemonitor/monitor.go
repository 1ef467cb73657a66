package overduemonitor

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/features/query/loans"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

const (
	OverdueLoansMetric = "library_overdue_loans"

	DefaultInterval = time.Hour

	NotificationTypeOverdue = "loan_overdue"

	LogMsgLoanOverdue  = "loan is overdue"
	LogMsgCheckFailed  = "overdue check failed"
	LogMsgCheckSummary = "overdue check completed"
)

var ErrInvalidInterval = errors.New("check interval must be positive")

// Notification is pushed to the student of an overdue loan.
type Notification struct {
	Type      string    `json:"type"`
	LoanID    string    `json:"loan_id"`
	BookID    string    `json:"book_id"`
	BookTitle string    `json:"book_title"`
	DueDate   time.Time `json:"due_date"`
}

// Notifier delivers a notification to every open connection of userID. Unconnected users are skipped.
type Notifier interface {
	Notify(userID string, notification any) int
}

type Monitor struct {
	loansHandler shell.CoreQueryHandler[loans.Query, loans.Loans]
	notifier     Notifier
	o            shell.Observability
	interval     time.Duration
	now          func() time.Time
}

type Option func(*Monitor) error

func WithInterval(interval time.Duration) Option {
	return func(m *Monitor) error {
		if interval <= 0 {
			return ErrInvalidInterval
		}

		m.interval = interval

		return nil
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Monitor) error {
		m.now = now
		return nil
	}
}

func WithObservability(o shell.Observability) Option {
	return func(m *Monitor) error {
		m.o = o
		return nil
	}
}

// NewMonitor creates a Monitor. A nil notifier only logs and records the gauge.
func NewMonitor(
	loansHandler shell.CoreQueryHandler[loans.Query, loans.Loans],
	notifier Notifier,
	opts ...Option,
) (*Monitor, error) {

	m := &Monitor{
		loansHandler: loansHandler,
		notifier:     notifier,
		interval:     DefaultInterval,
		now:          time.Now,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// CheckResult is the outcome of one sweep.
type CheckResult struct {
	Overdue  int
	Notified int
}

// Check reports all loans overdue at the monitor's clock.
func (m *Monitor) Check(ctx context.Context) (CheckResult, error) {
	result, err := m.loansHandler.Handle(ctx, loans.BuildQuery(core.LoanStatusOverdue, m.now()))
	if err != nil {
		m.o.LogError(ctx, LogMsgCheckFailed, shell.LogAttrError, err.Error())
		return CheckResult{}, err
	}

	check := CheckResult{Overdue: result.Count}

	for _, loan := range result.Loans {
		m.o.LogWarn(ctx, LogMsgLoanOverdue,
			"loan_id", loan.LoanID,
			"student_id", loan.StudentID,
			"book_id", loan.BookID,
			"due_date", loan.DueDate,
		)

		if m.notifier == nil || loan.DueDate == nil {
			continue
		}

		check.Notified += m.notifier.Notify(loan.StudentID, Notification{
			Type:      NotificationTypeOverdue,
			LoanID:    loan.LoanID,
			BookID:    loan.BookID,
			BookTitle: loan.BookTitle,
			DueDate:   *loan.DueDate,
		})
	}

	m.o.RecordValue(ctx, OverdueLoansMetric, float64(check.Overdue), nil)
	m.o.LogInfo(ctx, LogMsgCheckSummary, "overdue", check.Overdue, "notified", check.Notified)

	return check, nil
}

// Run checks once right away and then at every interval until ctx is done. Failed checks are logged
// and retried at the next tick.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	_, _ = m.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = m.Check(ctx)
		}
	}
}
