package lead

// CompanySize is one of the fixed head-count buckets offered by the form.
type CompanySize string

const (
	Size0To5    CompanySize = "0-5"
	Size5To9    CompanySize = "5-9"
	Size11To50  CompanySize = "11-50"
	Size20To50  CompanySize = "20-50"
	Size51To99  CompanySize = "51-99"
	Size100Plus CompanySize = "100+"
)

// CompanySizes lists the buckets in display order.
var CompanySizes = []CompanySize{Size0To5, Size5To9, Size11To50, Size20To50, Size51To99, Size100Plus}

// Valid reports whether s is one of the offered buckets.
func (s CompanySize) Valid() bool {
	for _, size := range CompanySizes {
		if s == size {
			return true
		}
	}
	return false
}

// Label is the option text shown in the select.
func (s CompanySize) Label() string {
	return string(s) + " employees"
}
