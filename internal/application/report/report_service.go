package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	applegacy "github.com/palengke/backend/internal/application/legacy"
	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/report"
	"github.com/palengke/backend/internal/domain/shared"
)

// ReportService computes summaries over the merged view of canonical
// aggregates and whatever imported legacy data is still only in the
// keyed store. Nothing here is cached; every call reads and recomputes.
type ReportService struct {
	leaseRepo    leasing.LeaseRepository
	expenseRepo  finance.ExpenseRepository
	paymentRepo  finance.RentPaymentRepository
	loanRepo     lending.LoanApplicationRepository
	store        legacy.KeyedStore
	expiryWindow time.Duration
	logger       *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	leaseRepo leasing.LeaseRepository,
	expenseRepo finance.ExpenseRepository,
	paymentRepo finance.RentPaymentRepository,
	loanRepo lending.LoanApplicationRepository,
	store legacy.KeyedStore,
	expiryWindow time.Duration,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		leaseRepo:    leaseRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
		loanRepo:     loanRepo,
		store:        store,
		expiryWindow: expiryWindow,
		logger:       logger,
	}
}

// mergedLeases combines the legacy lease partitions with the canonical
// repository. Canonical records go last so they win on duplicate ids.
// Statuses are the effective ones: an active lease past its end date
// reports EXPIRED.
func (s *ReportService) mergedLeases(ctx context.Context, now time.Time) ([]legacy.Record, error) {
	collections := make([][]legacy.Record, 0, 5)
	for _, name := range []string{
		legacy.CollectionLeaseRequests,
		legacy.CollectionApprovedLeases,
		legacy.CollectionRejectedLeases,
		legacy.CollectionLeases,
	} {
		records, err := s.store.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		collections = append(collections, records)
	}

	leases, err := s.leaseRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	canonical := make([]legacy.Record, 0, len(leases))
	for i := range leases {
		rec := applegacy.LeaseToRecord(&leases[i])
		rec.Status = leases[i].EffectiveStatus(now).String()
		canonical = append(canonical, rec)
	}
	collections = append(collections, canonical)

	return legacy.Merge(collections...), nil
}

// mergedExpenses combines the legacy expenses collection with the
// canonical repository, canonical last.
func (s *ReportService) mergedExpenses(ctx context.Context) ([]legacy.Record, error) {
	stored, err := s.store.Load(ctx, legacy.CollectionExpenses)
	if err != nil {
		return nil, err
	}
	expenses, _, err := s.expenseRepo.FindAll(ctx, finance.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	canonical := make([]legacy.Record, 0, len(expenses))
	for _, expense := range expenses {
		canonical = append(canonical, applegacy.ExpenseToRecord(expense))
	}
	return legacy.Merge(stored, canonical), nil
}

// mergedLoans combines the legacy loanApplications collection with the
// canonical repository, canonical last.
func (s *ReportService) mergedLoans(ctx context.Context) ([]legacy.Record, error) {
	stored, err := s.store.Load(ctx, legacy.CollectionLoanApplications)
	if err != nil {
		return nil, err
	}
	applications, _, err := s.loanRepo.FindAll(ctx, lending.LoanApplicationFilter{})
	if err != nil {
		return nil, err
	}
	canonical := make([]legacy.Record, 0, len(applications))
	for _, application := range applications {
		canonical = append(canonical, applegacy.LoanApplicationToRecord(application))
	}
	return legacy.Merge(stored, canonical), nil
}

// mergedPayments combines the legacy paymentHistory collection with the
// canonical repository, canonical last.
func (s *ReportService) mergedPayments(ctx context.Context, now time.Time) ([]legacy.Record, error) {
	stored, err := s.store.Load(ctx, legacy.CollectionPaymentHistory)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByPeriod(ctx, time.Time{}, now)
	if err != nil {
		return nil, err
	}
	canonical := make([]legacy.Record, 0, len(payments))
	for _, payment := range payments {
		canonical = append(canonical, applegacy.RentPaymentToRecord(payment))
	}
	return legacy.Merge(stored, canonical), nil
}

// Dashboard computes the landing-page figures
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()

	leases, err := s.mergedLeases(ctx, now)
	if err != nil {
		return nil, err
	}
	expenses, err := s.mergedExpenses(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.mergedLoans(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.mergedPayments(ctx, now)
	if err != nil {
		return nil, err
	}

	expiring := report.ExpiringWithin(leases, "leaseEnd", now, s.expiryWindow)

	return &DashboardSummary{
		Leases:         report.SummarizeByStatus(leases, "monthlyRate"),
		Expenses:       report.SummarizeByStatus(expenses, "amount"),
		Loans:          report.SummarizeByStatus(loans, "amount"),
		RentCollected:  report.Total(payments, "amount"),
		ExpiringLeases: len(expiring),
		GeneratedAt:    now,
	}, nil
}

// Expenses summarizes expenses incurred within the range, broken down
// by status and by category.
func (s *ReportService) Expenses(ctx context.Context, from, to time.Time) (*ExpenseSummary, error) {
	records, err := s.mergedExpenses(ctx)
	if err != nil {
		return nil, err
	}

	inRange := incurredBetween(from, to)
	byStatus, err := report.Summarize(records, report.Query{
		GroupBy:  "status",
		SumField: "amount",
		Filters:  []report.Filter{inRange},
	})
	if err != nil {
		return nil, err
	}
	byCategory, err := report.Summarize(records, report.Query{
		GroupBy:  "category",
		SumField: "amount",
		Filters:  []report.Filter{inRange},
	})
	if err != nil {
		return nil, err
	}

	return &ExpenseSummary{
		ByStatus:   byStatus,
		ByCategory: byCategory,
		Total:      report.Total(records, "amount", inRange),
		From:       from,
		To:         to,
	}, nil
}

// ExpiringLeases lists active leases ending inside the warning window
func (s *ReportService) ExpiringLeases(ctx context.Context) (*ExpiringLeaseReport, error) {
	now := time.Now()
	records, err := s.mergedLeases(ctx, now)
	if err != nil {
		return nil, err
	}

	active := make([]legacy.Record, 0, len(records))
	for _, rec := range records {
		if rec.Status == leasing.LeaseStatusActive.String() || rec.Status == leasing.LeaseStatusApproved.String() {
			active = append(active, rec)
		}
	}

	out := &ExpiringLeaseReport{
		WindowDays: int(s.expiryWindow.Hours() / 24),
		Leases:     make([]ExpiringLease, 0),
	}
	for _, rec := range report.ExpiringWithin(active, "leaseEnd", now, s.expiryWindow) {
		end, err := time.Parse(time.RFC3339, rec.GetString("leaseEnd"))
		if err != nil {
			continue
		}
		out.Leases = append(out.Leases, ExpiringLease{
			ID:            rec.ID,
			LeaseNumber:   rec.GetString("leaseNumber"),
			ApplicantName: rec.GetString("applicantName"),
			LeaseEnd:      end,
			DaysLeft:      int(end.Sub(now).Hours() / 24),
		})
	}
	return out, nil
}

// incurredBetween filters on the incurredAt payload field, falling back
// to the record's creation stamp when the field is absent. Inclusive on
// both ends.
func incurredBetween(from, to time.Time) report.Filter {
	return func(r legacy.Record) bool {
		at := r.CreatedAt
		if raw := r.GetString("incurredAt"); raw != "" {
			if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
				at = parsed
			}
		}
		return !at.Before(from) && !at.After(to)
	}
}
