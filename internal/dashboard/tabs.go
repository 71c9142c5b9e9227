package dashboard

// Tab is a top-level dashboard section
type Tab int

const (
	TabOverview Tab = iota
	TabInvoices
	TabPayout
	TabKYC
	TabFAQ
)

// Tabs in sidebar order
var Tabs = []Tab{TabOverview, TabInvoices, TabPayout, TabKYC, TabFAQ}

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabInvoices:
		return "Invoices"
	case TabPayout:
		return "Payout"
	case TabKYC:
		return "KYC"
	case TabFAQ:
		return "FAQ"
	default:
		return "Unknown"
	}
}

// ComingSoon reports tabs that only show a placeholder
func (t Tab) ComingSoon() bool {
	return t == TabPayout || t == TabKYC
}
