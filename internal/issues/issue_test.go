package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yankeeinlondon/schematic/internal/severity"
)

func TestIssueStringError(t *testing.T) {
	issue := Issue{
		Code:     CodeNamingCollision,
		Path:     "testapi.endpoints.CreateUser",
		Message:  "body type 'CreateUserRequest' conflicts with the generated request struct name",
		Severity: severity.SeverityError,
	}

	s := issue.String()
	assert.Contains(t, s, "✗")
	assert.Contains(t, s, "testapi.endpoints.CreateUser")
	assert.Contains(t, s, "naming-collision")
	assert.Contains(t, s, "CreateUserRequest")
}

func TestIssueStringWarning(t *testing.T) {
	issue := Issue{
		Code:     CodeModulePathCollision,
		Path:     "openai",
		Message:  "module path 'openai' is shared without explicit agreement",
		Severity: severity.SeverityWarning,
	}

	assert.Contains(t, issue.String(), "⚠")
}

func TestIssueStringInfo(t *testing.T) {
	issue := Issue{
		Code:     CodeMalformedPath,
		Path:     "x",
		Message:  "m",
		Severity: severity.SeverityInfo,
	}

	assert.Contains(t, issue.String(), "ℹ")
}
