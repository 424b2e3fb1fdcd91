package services

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/repositories"
)

type DashboardService struct {
	ReportRepo repositories.ReportRepository
	DB         *sql.DB
}

// DashboardSummary is the landing-page aggregate.
type DashboardSummary struct {
	Counts                 repositories.DashboardCounts `json:"counts"`
	ThisMonth              repositories.MonthStats      `json:"thisMonth"`
	OutstandingReceivables float64                      `json:"outstandingReceivables"`
	VendorPayables         float64                      `json:"vendorPayables"`
}

func (s DashboardService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DashboardService) reports() repositories.ReportRepository {
	if s.ReportRepo.DB != nil {
		return s.ReportRepo
	}
	return repositories.ReportRepository{DB: s.db()}
}

func (s DashboardService) Summary() (DashboardSummary, error) {
	var out DashboardSummary
	counts, err := s.reports().Counts()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.Counts = counts

	out.ThisMonth, err = s.reports().CurrentMonthStats()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.OutstandingReceivables, err = s.reports().OutstandingReceivables()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.VendorPayables, err = s.reports().VendorPayables()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	return out, nil
}

// RevenueChart returns the trailing six months of booking revenue.
func (s DashboardService) RevenueChart() ([]repositories.MonthRevenue, error) {
	out, err := s.reports().RevenueByMonth(6)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
