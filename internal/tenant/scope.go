package tenant

import "gorm.io/gorm"

// ScanCap bounds every tenant-wide list query. Scans are unpaginated by
// design, so the cap keeps a single request from reading an entire table.
const ScanCap = 1000

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
