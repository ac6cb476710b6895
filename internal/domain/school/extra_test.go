package school

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStudent_ExtraColumnsRoundTrip(t *testing.T) {
	s := Student{
		ID:     1700000000000,
		Name:   "Ahmed Khan",
		Class:  "VIII",
		Status: StatusStudying,
		Extra: map[string]string{
			"Religion":       "Islam",
			"Place of Birth": "Sabu Rahu",
		},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Student
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, s.Name, decoded.Name)
	require.Equal(t, s.Class, decoded.Class)
	require.Equal(t, s.Extra, decoded.Extra)
}

func TestStudent_ExtraColumnsFlatInJSON(t *testing.T) {
	s := Student{ID: 1, Name: "Sara", Extra: map[string]string{"Conduct": "Good"}}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "Good", raw["Conduct"])
	require.NotContains(t, raw, "Extra")
	require.NotContains(t, raw, "extra")
}

func TestStudent_CoreFieldWinsOverExtra(t *testing.T) {
	s := Student{ID: 1, Name: "Sara", Extra: map[string]string{"name": "shadow"}}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "Sara", raw["name"])
}

func TestStudent_UnknownColumnsPreservedFromImport(t *testing.T) {
	doc := `{"id":5,"name":"Bilal","rollNo":"12","class":"V","fatherName":"",
		"dob":"","parentContact":"","profilePicUrl":"","address":"","bloodGroup":"",
		"admissionDate":"","status":"Studying","BPS":"17","Seniority":3}`

	var s Student
	require.NoError(t, json.Unmarshal([]byte(doc), &s))
	require.Equal(t, "Bilal", s.Name)
	require.Equal(t, "17", s.Extra["BPS"])
	// Non-string extras keep their raw JSON text.
	require.Equal(t, "3", s.Extra["Seniority"])
}

func TestStaff_ExtraColumnsRoundTrip(t *testing.T) {
	s := Staff{
		ID:   2,
		Name: "Fatima Noor",
		Role: "Teacher",
		Extra: map[string]string{
			"CNIC No.": "41306-1234567-1",
		},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Staff
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, s, decoded)
}

func TestDefaults(t *testing.T) {
	require.Len(t, DefaultStudentHeaders(), 16)
	require.Len(t, DefaultStaffHeaders(), 9)
	require.Len(t, DefaultSubjects(), 5)
	require.Equal(t, []string{"2024-25"}, DefaultWorkspaceSessions())
	require.Equal(t, []string{"2023-24", "2024-25", "2025-26"}, DefaultGlobalSessions())
	require.Equal(t, "math", DefaultSubjects()[0].ID)
	require.False(t, DefaultSettings().OnboardingComplete)
	require.Equal(t, DefaultPrimaryColor, DefaultSettings().PrimaryColor)
}
