package partner

// Lookup trigger thresholds. Shorter inputs are still being typed and
// must not fire a lookup.
const (
	PhoneMatchMinLength      = 10
	NationalIDMatchMinLength = 12
)

// MatchField identifies which field triggered an auto-match
type MatchField string

const (
	MatchFieldNone       MatchField = ""
	MatchFieldPhone      MatchField = "phone"
	MatchFieldNationalID MatchField = "national_id"
)

// MatchResult is the outcome of a customer auto-match attempt
type MatchResult struct {
	Customer *Customer
	Field    MatchField
}

// Matched reports whether a customer was found
func (r MatchResult) Matched() bool {
	return r.Customer != nil
}

// PhoneLookupReady reports whether the phone input is long enough to
// trigger an exact-match lookup
func PhoneLookupReady(phone string) bool {
	return len(phone) >= PhoneMatchMinLength
}

// NationalIDLookupReady reports whether the national ID input is long
// enough to trigger an exact-match lookup
func NationalIDLookupReady(nationalID string) bool {
	return len(nationalID) >= NationalIDMatchMinLength
}

// MatchByPhone scans customers for an exact phone match. Inputs below the
// threshold never match. The first hit wins on duplicates.
func MatchByPhone(customers []Customer, phone string) MatchResult {
	if !PhoneLookupReady(phone) {
		return MatchResult{}
	}
	for i := range customers {
		if customers[i].Phone == phone {
			return MatchResult{Customer: &customers[i], Field: MatchFieldPhone}
		}
	}
	return MatchResult{}
}

// MatchByNationalID scans customers for an exact national ID match.
// Inputs below the threshold never match. The first hit wins on duplicates.
func MatchByNationalID(customers []Customer, nationalID string) MatchResult {
	if !NationalIDLookupReady(nationalID) {
		return MatchResult{}
	}
	for i := range customers {
		if customers[i].NationalID == nationalID {
			return MatchResult{Customer: &customers[i], Field: MatchFieldNationalID}
		}
	}
	return MatchResult{}
}
