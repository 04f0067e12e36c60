package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const form21Sample = `FORM 21
SALE CERTIFICATE
ABC MOTORS, 4 Bagalur Road, Hosur 635109
Ph: 9876543210
Certified that Honda Activa has been delivered by us to:
Name of Buyer: RAVI KUMAR
S/O Murugan
Address: 12 Gandhi Street, Mathigiri, Hosur 635110
Ph: 9123456780
Engine No: JF50E12345678  Chassis No: ME4JF50ABC1234567
Month and Year of Manufacture: May 2024
`

func TestCleanName(t *testing.T) {
	assert.Equal(t, "John Smith", CleanName("Mr. John Smith"))
	assert.Equal(t, "SHIVAM", CleanName("S H I V A M"))
	assert.Equal(t, "N/A", CleanName("N/A"))
	assert.Equal(t, "", CleanName(""))
	assert.Equal(t, "Lakshmi Devi", CleanName("smt.  Lakshmi   Devi"))
	assert.Equal(t, "Kumar", CleanName("Mr. Mrs Kumar"))
	assert.Equal(t, "Mrs", CleanName("Mrs"), "a bare honorific is not a name to strip")
	assert.Equal(t, "MOHAN", CleanName("MR MOHAN"))
	assert.Equal(t, "A B", CleanName("A B"), "two letters are left alone")
}

func TestCleanNameIdempotent(t *testing.T) {
	for _, s := range []string{"Mr. John Smith", "S H I V A M", "N/A", "", "Shri. R. Kumar", "Ms.Priya"} {
		once := CleanName(s)
		assert.Equal(t, once, CleanName(once), "input %q", s)
	}
}

func TestConvertShortMonthToFull(t *testing.T) {
	assert.Equal(t, "May", ConvertShortMonthToFull("MAY"))
	assert.Equal(t, "May", ConvertShortMonthToFull("may"))
	assert.Equal(t, "September", ConvertShortMonthToFull("Sep."))
	assert.Equal(t, "January", ConvertShortMonthToFull(" jan "))
	assert.Equal(t, "xyz", ConvertShortMonthToFull("xyz"))
	assert.Equal(t, "N/A", ConvertShortMonthToFull("N/A"))
	assert.Equal(t, "", ConvertShortMonthToFull(""))
	assert.Equal(t, "December", ConvertShortMonthToFull(ConvertShortMonthToFull("dec")))
}

func TestCleanMobileNumber(t *testing.T) {
	assert.Equal(t, "9876543210", CleanMobileNumber("+91 98765 43210"))
	assert.Equal(t, "9876543210", CleanMobileNumber("09876543210"))
	assert.Equal(t, "9876543210", CleanMobileNumber("98765-43210"))
	assert.Equal(t, "12345", CleanMobileNumber(" 12345 "))
	assert.Equal(t, "N/A", CleanMobileNumber("N/A"))
	assert.Equal(t, "9876543210", CleanMobileNumber(CleanMobileNumber("+919876543210")))
}

func TestFindRelation(t *testing.T) {
	rel, ok := FindRelation(form21Sample)
	require.True(t, ok)
	assert.Equal(t, "S/O", rel.Kind)
	assert.Equal(t, "MURUGAN", rel.Name)
	assert.Equal(t, "S/O MURUGAN", rel.String())

	rel, ok = FindRelation("Name: Priya\nW/o. Senthil Kumar Address: 4 Main Road")
	require.True(t, ok)
	assert.Equal(t, "W/O SENTHIL KUMAR", rel.String())

	rel, ok = FindRelation("Son/Wife/Daughter of :\n\n  Ramesh\nAddress")
	require.True(t, ok)
	assert.Equal(t, "S/O RAMESH", rel.String())

	rel, ok = FindRelation("Daughter of Kannan, Hosur")
	require.True(t, ok)
	assert.Equal(t, "D/O KANNAN", rel.String())

	_, ok = FindRelation("Name of Buyer: RAVI KUMAR\nAddress: Hosur")
	assert.False(t, ok)
}

func TestAddressCleanerRemovesPincode(t *testing.T) {
	c := NewAddressCleaner(nil)

	out := c.Clean("Village X 123456 District Y", "123456", Relation{})
	assert.NotContains(t, out, "123456")
	assert.Equal(t, "VILLAGE X DIST Y", out)

	out = c.Clean("12 Main Road, Hosur 635 110", "635110", Relation{})
	assert.Equal(t, "12 MAIN ROAD, HOSUR", out)
}

func TestAddressCleanerDedupes(t *testing.T) {
	c := NewAddressCleaner(nil)

	out := c.Clean("Road Road Near Station", "N/A", Relation{})
	assert.Equal(t, 1, strings.Count(out, "ROAD"))
	assert.True(t, strings.HasPrefix(out, "ROAD"))
	assert.Equal(t, "ROAD NEAR STATION", out)

	out = c.Clean("Hosur, hosur, Krishnagiri", "", Relation{})
	assert.Equal(t, "HOSUR, KRISHNAGIRI", out)
}

func TestAddressCleanerFixups(t *testing.T) {
	c := NewAddressCleaner(nil)
	out := c.Clean("No.12, Krishnagirl Dist., Tamil Nadu", "", Relation{})
	assert.Equal(t, "NO 12, KRISHNAGIRI DIST, TAMIL NADU", out)

	custom, err := CompileSubstitutions([]Substitution{{Pattern: `(?i)\bmathigri\b`, Replacement: "MATHIGIRI"}})
	require.NoError(t, err)
	out = NewAddressCleaner(custom).Clean("Mathigri Dist.", "", Relation{})
	assert.Equal(t, "MATHIGIRI DIST.", out, "a custom table replaces the built-in one")
}

func TestAddressCleanerRelation(t *testing.T) {
	c := NewAddressCleaner(nil)
	rel := Relation{Kind: "S/O", Name: "MURUGAN"}

	out := c.Clean("12 Gandhi Street, Hosur", "", rel)
	assert.Equal(t, "S/O MURUGAN 12 GANDHI STREET, HOSUR", out)

	out = c.Clean("C/O Murugan, 12 Gandhi Street", "", rel)
	assert.Equal(t, "C/O MURUGAN, 12 GANDHI STREET", out, "already embedded name is not prefixed again")
}

func TestAddressCleanerRelationNameInsideWord(t *testing.T) {
	c := NewAddressCleaner(nil)
	rel := Relation{Kind: "S/O", Name: "RAVI"}

	out := c.Clean("12 Ravindra Nagar, Hosur", "", rel)
	assert.Equal(t, "S/O RAVI 12 RAVINDRA NAGAR, HOSUR", out)
	assert.Equal(t, out, c.Clean(out, "", rel))

	out = c.Clean("C/O Ravi, Ravindra Nagar", "", rel)
	assert.Equal(t, "C/O RAVI, RAVINDRA NAGAR", out)
}

func TestAddressCleanerIdempotent(t *testing.T) {
	c := NewAddressCleaner(nil)
	rel := Relation{Kind: "S/O", Name: "MURUGAN"}
	inputs := []string{
		"12 Gandhi Street, Mathigiri, Hosur 635110",
		"Road Road Near Station",
		"No.12, P.O. Bagalur, Hosur Tk., Krishnagiri Dist",
		"N/A",
		"",
	}
	for _, s := range inputs {
		once := c.Clean(s, "635110", rel)
		assert.Equal(t, once, c.Clean(once, "635110", rel), "input %q", s)
	}
}

func TestAddressCleanerSentinel(t *testing.T) {
	c := NewAddressCleaner(nil)
	assert.Equal(t, "N/A", c.Clean("N/A", "635110", Relation{Kind: "S/O", Name: "MURUGAN"}))
	assert.Equal(t, "", c.Clean("", "", Relation{}))
}

func TestRecoverMobileNumberSkipsDealer(t *testing.T) {
	anchor := BuyerSectionStart(form21Sample, "RAVI KUMAR")
	require.GreaterOrEqual(t, anchor, 0)
	assert.Less(t, strings.Index(form21Sample, "9876543210"), anchor)

	mobile, ok := RecoverMobileNumber(form21Sample, anchor)
	require.True(t, ok)
	assert.Equal(t, "9123456780", mobile)

	mobile, ok = RecoverMobileNumber(form21Sample, -1)
	require.True(t, ok)
	assert.Equal(t, "9123456780", mobile, "without an anchor the last number is used")
}

func TestRecoverMobileNumberLabels(t *testing.T) {
	mobile, ok := RecoverMobileNumber("Buyer Name: X\nMobile No. +91 98765 43210", 0)
	require.True(t, ok)
	assert.Equal(t, "9876543210", mobile)

	raw := "Dealer Ph: 9876543210\nName of Buyer: X\nAddress: Hosur"
	_, ok = RecoverMobileNumber(raw, strings.Index(raw, "Name of Buyer"))
	assert.False(t, ok, "the dealer number is never used once the buyer section is known")
}

func TestBuyerSectionStartFallbacks(t *testing.T) {
	raw := "Dealer: ABC\nRAVI KUMAR\nAddress: Hosur"
	assert.Equal(t, strings.Index(raw, "RAVI"), BuyerSectionStart(raw, "Ravi Kumar"))
	assert.Equal(t, strings.Index(raw, "Address"), BuyerSectionStart(raw, "N/A"))
	assert.Equal(t, -1, BuyerSectionStart("nothing here", ""))
}

func TestRecoverPincode(t *testing.T) {
	anchor := BuyerSectionStart(form21Sample, "")
	pin, ok := RecoverPincode(form21Sample, anchor)
	require.True(t, ok)
	assert.Equal(t, "635110", pin)

	pin, ok = RecoverPincode("Buyer Name: X\nPin Code: 635 126", 0)
	require.True(t, ok)
	assert.Equal(t, "635126", pin)

	_, ok = RecoverPincode("no digits at all", -1)
	assert.False(t, ok)
}
