package models

// Theme defines the UI theme options a user can store in settings.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}

// DateFormat defines the date display formats a user can store in settings.
type DateFormat string

const (
	DateFormatDMY DateFormat = "DD-MM-YYYY"
	DateFormatMDY DateFormat = "MM-DD-YYYY"
	DateFormatYMD DateFormat = "YYYY-MM-DD"
)

func (f DateFormat) Valid() bool {
	switch f {
	case DateFormatDMY, DateFormatMDY, DateFormatYMD:
		return true
	}
	return false
}

// IncomeCategory defines the possible categories for an income record.
type IncomeCategory string

const (
	IncomeEmployment     IncomeCategory = "Employment"
	IncomeSelfEmployment IncomeCategory = "Self-employment"
	IncomeInvestments    IncomeCategory = "Investments"
	IncomeRental         IncomeCategory = "Rental"
	IncomeOther          IncomeCategory = "Other"
)

func (c IncomeCategory) Valid() bool {
	switch c {
	case IncomeEmployment, IncomeSelfEmployment, IncomeInvestments, IncomeRental, IncomeOther:
		return true
	}
	return false
}

// ExpenseCategory defines the possible categories for expenses and budgets.
type ExpenseCategory string

const (
	ExpenseHousing        ExpenseCategory = "Housing"
	ExpenseFood           ExpenseCategory = "Food"
	ExpenseTransportation ExpenseCategory = "Transportation"
	ExpenseEntertainment  ExpenseCategory = "Entertainment"
	ExpenseUtilities      ExpenseCategory = "Utilities"
	ExpenseHealthcare     ExpenseCategory = "Healthcare"
	ExpensePersonal       ExpenseCategory = "Personal"
	ExpenseEducation      ExpenseCategory = "Education"
	ExpenseSavings        ExpenseCategory = "Savings"
	ExpenseOther          ExpenseCategory = "Other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseHousing, ExpenseFood, ExpenseTransportation, ExpenseEntertainment,
		ExpenseUtilities, ExpenseHealthcare, ExpensePersonal, ExpenseEducation,
		ExpenseSavings, ExpenseOther:
		return true
	}
	return false
}

// PaymentMethod defines the possible payment methods for an expense.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentDebitCard    PaymentMethod = "Debit Card"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentOther        PaymentMethod = "Other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentBankTransfer, PaymentOther:
		return true
	}
	return false
}

// InvestmentType defines the possible types for an investment record.
type InvestmentType string

const (
	InvestmentEquity       InvestmentType = "Equity"
	InvestmentDebt         InvestmentType = "Debt"
	InvestmentRealEstate   InvestmentType = "Real Estate"
	InvestmentGold         InvestmentType = "Gold"
	InvestmentCrypto       InvestmentType = "Cryptocurrency"
	InvestmentFixedDeposit InvestmentType = "Fixed Deposit"
	InvestmentBonds        InvestmentType = "Bonds"
	InvestmentOther        InvestmentType = "Other"
)

func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentEquity, InvestmentDebt, InvestmentRealEstate, InvestmentGold,
		InvestmentCrypto, InvestmentFixedDeposit, InvestmentBonds, InvestmentOther:
		return true
	}
	return false
}
