package catalog

import (
	"strings"

	"gorm.io/gorm"
)

// Filter captures the sidebar filter state. Zero values leave the
// corresponding dimension unrestricted, except MinDownloads which is
// always applied (NULL download counts never satisfy the comparison,
// so unknown rows drop out the same way they do for the year range).
type Filter struct {
	MinDownloads int64
	YearFrom     int
	YearTo       int
	Developers   []string
	OS           []string
	FreeOnly     bool
}

// Scope composes the filter onto a gorm query over the games table.
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	if len(f.Developers) > 0 {
		db = db.Where("developer IN ?", f.Developers)
	}
	if len(f.OS) > 0 {
		// Any-of match against the comma-separated OS column with
		// whitespace stripped, e.g. "windows, mac os" matches "macos".
		var conds []string
		var args []interface{}
		for _, os := range f.OS {
			conds = append(conds, "REPLACE(supported_os, ' ', '') LIKE ?")
			args = append(args, "%"+strings.ReplaceAll(os, " ", "")+"%")
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}
	db = db.Where("estimated_downloads >= ?", f.MinDownloads)
	if f.YearFrom > 0 {
		db = db.Where("release_year >= ?", f.YearFrom)
	}
	if f.YearTo > 0 {
		db = db.Where("release_year <= ?", f.YearTo)
	}
	if f.FreeOnly {
		db = db.Where("price = 0")
	}
	return db
}
