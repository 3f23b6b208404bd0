package validators

import "testing"

func TestCheckMarketNumber(t *testing.T) {
	testCases := []struct {
		Name     string
		Number   string
		Expected bool
	}{
		{
			Name:     "Success. Plain digits #1",
			Number:   "128",
			Expected: true,
		},
		{
			Name:     "Success. Dash-formatted result #2",
			Number:   "123-45-678",
			Expected: true,
		},
		{
			Name:     "Success. Leading zeros kept #3",
			Number:   "007",
			Expected: true,
		},
		{
			Name:     "Success. Surrounding spaces #4",
			Number:   " 550 ",
			Expected: true,
		},
		{
			Name:     "Success. Free-form value #5",
			Number:   "12a",
			Expected: true,
		},
		{
			Name:     "Error. Empty string #6",
			Number:   "",
			Expected: false,
		},
		{
			Name:     "Error. Spaces only #7",
			Number:   "   ",
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckMarketNumber(tc.Number); got != tc.Expected {
				t.Errorf("Expected %v for '%s', got: %v", tc.Expected, tc.Number, got)
			}
		})
	}
}
