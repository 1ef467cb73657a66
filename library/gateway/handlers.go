package gateway

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/library/features/command/addbook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/addcategory"
	"github.com/AntonStoeckl/school-library-go/library/features/command/addgradelevel"
	"github.com/AntonStoeckl/school-library-go/library/features/command/approveloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/changemembership"
	"github.com/AntonStoeckl/school-library-go/library/features/command/handoverbook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registeradmin"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registerstudent"
	"github.com/AntonStoeckl/school-library-go/library/features/command/rejectloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removebook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removecategory"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removestudent"
	"github.com/AntonStoeckl/school-library-go/library/features/command/renamecategory"
	"github.com/AntonStoeckl/school-library-go/library/features/command/requestloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/returnloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/updatebook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/updatestudent"
	"github.com/AntonStoeckl/school-library-go/library/features/query/bookdetails"
	"github.com/AntonStoeckl/school-library-go/library/features/query/books"
	"github.com/AntonStoeckl/school-library-go/library/features/query/categories"
	"github.com/AntonStoeckl/school-library-go/library/features/query/credentials"
	"github.com/AntonStoeckl/school-library-go/library/features/query/dashboard"
	"github.com/AntonStoeckl/school-library-go/library/features/query/gradelevels"
	"github.com/AntonStoeckl/school-library-go/library/features/query/loans"
	"github.com/AntonStoeckl/school-library-go/library/features/query/studentloans"
	"github.com/AntonStoeckl/school-library-go/library/features/query/students"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell/observable"
)

// Handlers holds every use case the gateway serves.
type Handlers struct {
	AddBook    shell.CoreCommandHandler[addbook.Command]
	UpdateBook shell.CoreCommandHandler[updatebook.Command]
	RemoveBook shell.CoreCommandHandler[removebook.Command]

	RequestLoan  shell.CoreCommandHandler[requestloan.Command]
	ApproveLoan  shell.CoreCommandHandler[approveloan.Command]
	RejectLoan   shell.CoreCommandHandler[rejectloan.Command]
	HandOverBook shell.CoreCommandHandler[handoverbook.Command]
	ReturnLoan   shell.CoreCommandHandler[returnloan.Command]

	RegisterStudent  shell.CoreCommandHandler[registerstudent.Command]
	UpdateStudent    shell.CoreCommandHandler[updatestudent.Command]
	RemoveStudent    shell.CoreCommandHandler[removestudent.Command]
	ChangeMembership shell.CoreCommandHandler[changemembership.Command]
	RegisterAdmin    shell.CoreCommandHandler[registeradmin.Command]

	AddCategory    shell.CoreCommandHandler[addcategory.Command]
	RenameCategory shell.CoreCommandHandler[renamecategory.Command]
	RemoveCategory shell.CoreCommandHandler[removecategory.Command]
	AddGradeLevel  shell.CoreCommandHandler[addgradelevel.Command]

	Books        shell.CoreQueryHandler[books.Query, books.Books]
	BookDetails  shell.CoreQueryHandler[bookdetails.Query, bookdetails.Book]
	Loans        shell.CoreQueryHandler[loans.Query, loans.Loans]
	StudentLoans shell.CoreQueryHandler[studentloans.Query, studentloans.StudentLoans]
	Students     shell.CoreQueryHandler[students.Query, students.Students]
	Dashboard    shell.CoreQueryHandler[dashboard.Query, dashboard.Dashboard]
	Categories   shell.CoreQueryHandler[categories.Query, categories.Categories]
	GradeLevels  shell.CoreQueryHandler[gradelevels.Query, gradelevels.GradeLevels]
	Credentials  shell.CoreQueryHandler[credentials.Query, credentials.Credentials]
}

// HandlerOptions tunes NewHandlers. The zero value is a working setup without observability.
type HandlerOptions struct {
	Observability *shell.Observability
	LoanPeriod    time.Duration
}

// NewHandlers builds all handlers on eventStore. With Observability set every handler is wrapped by
// the observable wrappers and the retry loops report their metrics.
func NewHandlers(eventStore shell.EventStore, opts HandlerOptions) Handlers {
	o := opts.Observability

	loanPeriod := opts.LoanPeriod
	if loanPeriod <= 0 {
		loanPeriod = approveloan.DefaultLoanPeriod
	}

	return Handlers{
		AddBook: command[addbook.Command](o, addbook.NewCommandHandler(eventStore,
			addbook.WithRetryOptions(retryOptions[addbook.Command](o)...))),
		UpdateBook: command[updatebook.Command](o, updatebook.NewCommandHandler(eventStore,
			updatebook.WithRetryOptions(retryOptions[updatebook.Command](o)...))),
		RemoveBook: command[removebook.Command](o, removebook.NewCommandHandler(eventStore,
			removebook.WithRetryOptions(retryOptions[removebook.Command](o)...))),

		RequestLoan: command[requestloan.Command](o, requestloan.NewCommandHandler(eventStore,
			requestloan.WithRetryOptions(retryOptions[requestloan.Command](o)...))),
		ApproveLoan: command[approveloan.Command](o, approveloan.NewCommandHandler(eventStore,
			approveloan.WithLoanPeriod(loanPeriod),
			approveloan.WithRetryOptions(retryOptions[approveloan.Command](o)...))),
		RejectLoan: command[rejectloan.Command](o, rejectloan.NewCommandHandler(eventStore,
			rejectloan.WithRetryOptions(retryOptions[rejectloan.Command](o)...))),
		HandOverBook: command[handoverbook.Command](o, handoverbook.NewCommandHandler(eventStore,
			handoverbook.WithRetryOptions(retryOptions[handoverbook.Command](o)...))),
		ReturnLoan: command[returnloan.Command](o, returnloan.NewCommandHandler(eventStore,
			returnloan.WithRetryOptions(retryOptions[returnloan.Command](o)...))),

		RegisterStudent: command[registerstudent.Command](o, registerstudent.NewCommandHandler(eventStore,
			registerstudent.WithRetryOptions(retryOptions[registerstudent.Command](o)...))),
		UpdateStudent: command[updatestudent.Command](o, updatestudent.NewCommandHandler(eventStore,
			updatestudent.WithRetryOptions(retryOptions[updatestudent.Command](o)...))),
		RemoveStudent: command[removestudent.Command](o, removestudent.NewCommandHandler(eventStore,
			removestudent.WithRetryOptions(retryOptions[removestudent.Command](o)...))),
		ChangeMembership: command[changemembership.Command](o, changemembership.NewCommandHandler(eventStore,
			changemembership.WithRetryOptions(retryOptions[changemembership.Command](o)...))),
		RegisterAdmin: command[registeradmin.Command](o, registeradmin.NewCommandHandler(eventStore,
			registeradmin.WithRetryOptions(retryOptions[registeradmin.Command](o)...))),

		AddCategory: command[addcategory.Command](o, addcategory.NewCommandHandler(eventStore,
			addcategory.WithRetryOptions(retryOptions[addcategory.Command](o)...))),
		RenameCategory: command[renamecategory.Command](o, renamecategory.NewCommandHandler(eventStore,
			renamecategory.WithRetryOptions(retryOptions[renamecategory.Command](o)...))),
		RemoveCategory: command[removecategory.Command](o, removecategory.NewCommandHandler(eventStore,
			removecategory.WithRetryOptions(retryOptions[removecategory.Command](o)...))),
		AddGradeLevel: command[addgradelevel.Command](o, addgradelevel.NewCommandHandler(eventStore,
			addgradelevel.WithRetryOptions(retryOptions[addgradelevel.Command](o)...))),

		Books:        query[books.Query, books.Books](o, books.NewQueryHandler(eventStore)),
		BookDetails:  query[bookdetails.Query, bookdetails.Book](o, bookdetails.NewQueryHandler(eventStore)),
		Loans:        query[loans.Query, loans.Loans](o, loans.NewQueryHandler(eventStore)),
		StudentLoans: query[studentloans.Query, studentloans.StudentLoans](o, studentloans.NewQueryHandler(eventStore)),
		Students:     query[students.Query, students.Students](o, students.NewQueryHandler(eventStore)),
		Dashboard:    query[dashboard.Query, dashboard.Dashboard](o, dashboard.NewQueryHandler(eventStore)),
		Categories:   query[categories.Query, categories.Categories](o, categories.NewQueryHandler(eventStore)),
		GradeLevels:  query[gradelevels.Query, gradelevels.GradeLevels](o, gradelevels.NewQueryHandler(eventStore)),
		Credentials:  query[credentials.Query, credentials.Credentials](o, credentials.NewQueryHandler(eventStore)),
	}
}

func command[C shell.Command](o *shell.Observability, h shell.CoreCommandHandler[C]) shell.CoreCommandHandler[C] {
	if o == nil {
		return h
	}

	return observable.NewCommandWrapper[C](h, observable.WithObservability(*o))
}

func query[Q shell.Query, R any](o *shell.Observability, h shell.CoreQueryHandler[Q, R]) shell.CoreQueryHandler[Q, R] {
	if o == nil {
		return h
	}

	return observable.NewQueryWrapper[Q, R](h, observable.WithObservability(*o))
}

func retryOptions[C shell.Command](o *shell.Observability) []shell.RetryOption {
	if o == nil || o.Metrics == nil {
		return nil
	}

	var zero C

	return []shell.RetryOption{shell.WithMetrics(o.Metrics, zero.CommandType())}
}
