package invoice

import "github.com/kenod/invoice-api/internal/i18n"

// Field is one renderer-facing label/value pair. ForceVisible makes the
// renderer show the field even without a value; its default differs per
// field and setters leave it at that default.
type Field struct {
	Label        string `json:"label"`
	Value        string `json:"value,omitempty"`
	ForceVisible bool   `json:"forceVisible"`
}

// Parameter is a custom name/value row appended to a section.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Information groups the date and order-reference fields of a document.
// The taxable supply date is the only field visible by default.
type Information struct {
	Order             Field       `json:"order"`
	FromDate          Field       `json:"fromDate"`
	IssueDate         Field       `json:"issueDate"`
	DueDate           Field       `json:"dueDate"`
	TaxableSupplyDate Field       `json:"taxableSupplyDate"`
	Parameters        []Parameter `json:"parameters,omitempty"`
}

// NewInformation returns an information section with English labels and
// per-field visibility defaults.
func NewInformation() Information {
	return Information{
		Order:             Field{Label: "Based on order no.:"},
		FromDate:          Field{Label: "From date:"},
		IssueDate:         Field{Label: "Issue date:"},
		DueDate:           Field{Label: "Due date:"},
		TaxableSupplyDate: Field{Label: "Taxable supply date:", ForceVisible: true},
	}
}

// SetOrder stores the order reference; empty values are ignored.
func (i *Information) SetOrder(order string) {
	setField(&i.Order, order)
}

func (i *Information) SetFromDate(date string) {
	setField(&i.FromDate, date)
}

func (i *Information) SetIssueDate(date string) {
	setField(&i.IssueDate, date)
}

func (i *Information) SetDueDate(date string) {
	setField(&i.DueDate, date)
}

// SetTaxableSupplyDate stores the taxable supply date; the field keeps its
// always-visible default, unlike the other information fields.
func (i *Information) SetTaxableSupplyDate(date string) {
	if date == "" {
		return
	}
	i.TaxableSupplyDate.Value = date
	i.TaxableSupplyDate.ForceVisible = true
}

// AddParameter appends a custom row; empty names or values are dropped.
func (i *Information) AddParameter(name, value string) {
	if name == "" || value == "" {
		return
	}
	i.Parameters = append(i.Parameters, Parameter{Name: name, Value: value})
}

// Localize rewrites the section labels using the given language catalogue.
func (i *Information) Localize(lang string) {
	i.Order.Label = i18n.T(lang, "based_on_order_no")
	i.FromDate.Label = i18n.T(lang, "from_date")
	i.IssueDate.Label = i18n.T(lang, "issue_date")
	i.DueDate.Label = i18n.T(lang, "due_date")
	i.TaxableSupplyDate.Label = i18n.T(lang, "tax_point_date")
}

// PaymentDetails groups the bank-transfer fields shown in the payment block.
type PaymentDetails struct {
	PaymentMethod  Field       `json:"paymentMethod"`
	AccountNumber  Field       `json:"accountNumber"`
	BankCode       Field       `json:"bankCode"`
	VariableSymbol Field       `json:"variableSymbol"`
	ConstantSymbol Field       `json:"constantSymbol"`
	SpecificSymbol Field       `json:"specificSymbol"`
	Parameters     []Parameter `json:"parameters,omitempty"`
}

// NewPaymentDetails returns a payment section with English labels; no field
// is forced visible, the renderer shows whichever carry values.
func NewPaymentDetails() PaymentDetails {
	return PaymentDetails{
		PaymentMethod:  Field{Label: "Payment method:"},
		AccountNumber:  Field{Label: "Account number:"},
		BankCode:       Field{Label: "Bank code:"},
		VariableSymbol: Field{Label: "Variable symbol:"},
		ConstantSymbol: Field{Label: "Constant symbol:"},
		SpecificSymbol: Field{Label: "Specific symbol:"},
	}
}

func (p *PaymentDetails) SetPaymentMethod(method string) {
	setField(&p.PaymentMethod, method)
}

func (p *PaymentDetails) SetAccountNumber(account string) {
	setField(&p.AccountNumber, account)
}

func (p *PaymentDetails) SetBankCode(code string) {
	setField(&p.BankCode, code)
}

func (p *PaymentDetails) SetVariableSymbol(symbol string) {
	setField(&p.VariableSymbol, symbol)
}

func (p *PaymentDetails) SetConstantSymbol(symbol string) {
	setField(&p.ConstantSymbol, symbol)
}

func (p *PaymentDetails) SetSpecificSymbol(symbol string) {
	setField(&p.SpecificSymbol, symbol)
}

// AddParameter appends a custom row; empty names or values are dropped.
func (p *PaymentDetails) AddParameter(name, value string) {
	if name == "" || value == "" {
		return
	}
	p.Parameters = append(p.Parameters, Parameter{Name: name, Value: value})
}

// Localize rewrites the section labels using the given language catalogue.
func (p *PaymentDetails) Localize(lang string) {
	p.PaymentMethod.Label = i18n.T(lang, "payment_method")
	p.AccountNumber.Label = i18n.T(lang, "account_number")
	p.BankCode.Label = i18n.T(lang, "bank_code")
	p.VariableSymbol.Label = i18n.T(lang, "variable_symbol")
	p.ConstantSymbol.Label = i18n.T(lang, "constant_symbol")
	p.SpecificSymbol.Label = i18n.T(lang, "specific_symbol")
}

func setField(f *Field, value string) {
	if value == "" {
		return
	}
	f.Value = value
}
