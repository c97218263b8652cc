package sales

// Condition describes the physical state of a sold unit
type Condition string

const (
	ConditionNew      Condition = "Mới 100%"
	ConditionLikeNew  Condition = "Like new"
	ConditionUsed     Condition = "Cũ"
	ConditionExchange Condition = "Đổi trả"
	ConditionWarranty Condition = "Bảo hành"
	ConditionOther    Condition = "Khác"
)

// DefaultCondition is assigned to newly added cart lines
const DefaultCondition = ConditionNew

// Conditions lists the selectable condition labels in display order
func Conditions() []Condition {
	return []Condition{
		ConditionNew,
		ConditionLikeNew,
		ConditionUsed,
		ConditionExchange,
		ConditionWarranty,
		ConditionOther,
	}
}

// IsValidCondition reports whether the label is one of the known conditions
func IsValidCondition(c Condition) bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionUsed, ConditionExchange, ConditionWarranty, ConditionOther:
		return true
	}
	return false
}
