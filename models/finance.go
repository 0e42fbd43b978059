package models

// Expense categories.
const (
	ExpenseSupplies  = "supplies"
	ExpenseRent      = "rent"
	ExpenseUtilities = "utilities"
	ExpenseMarketing = "marketing"
	ExpenseOther     = "other"
)

// Revenue categories for manual income entries (product sales, courses).
// Appointment income is derived from confirmed appointments, not recorded
// here.
const (
	RevenueProductSale = "product_sale"
	RevenueCourse      = "course"
	RevenueOther       = "other"
)

func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseSupplies, ExpenseRent, ExpenseUtilities, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}

func ValidRevenueCategory(c string) bool {
	switch c {
	case RevenueProductSale, RevenueCourse, RevenueOther:
		return true
	}
	return false
}

type Expense struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Item     string  `gorm:"not null" json:"item"`
	Category string  `gorm:"type:varchar(20);not null" json:"category"`
	Amount   float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date     string  `gorm:"not null" json:"date"` // YYYY-MM-DD
}

type Revenue struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Item     string  `gorm:"not null" json:"item"`
	Category string  `gorm:"type:varchar(20);not null" json:"category"`
	Amount   float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date     string  `gorm:"not null" json:"date"` // YYYY-MM-DD
}
