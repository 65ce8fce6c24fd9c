package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitkovskyi/commitgate/internal/core"
)

func TestAnalyzeWeakHashingOnly(t *testing.T) {
	a := NewAnalyzer()
	diff := "+hashed = hashlib.md5(password.encode()).hexdigest()\n"

	v := a.Analyze("auth.py", diff)

	// Exactly at the critical boundary: 100-30 is not below 70.
	assert.Equal(t, 70, v.Score)
	assert.False(t, v.Critical)
	assert.Equal(t, core.DecisionAccept, v.Decision)
	assert.Equal(t, core.SourceStaticFallback, v.Source)
	assert.Equal(t, []string{"Weak hashing algorithm detected"}, v.Issues)
	assert.Equal(t, []string{"auth.py"}, v.Paths)
}

func TestAnalyzeWeakHashingAndSQLInjection(t *testing.T) {
	a := NewAnalyzer()
	diff := "+hashed = hashlib.md5(password.encode()).hexdigest()\n" +
		"+query = f\"SELECT * FROM users WHERE name = '{user_input}'\"\n"

	v := a.Analyze("auth.py", diff)

	assert.Equal(t, 30, v.Score)
	assert.True(t, v.Critical)
	assert.Equal(t, core.DecisionReject, v.Decision)
	assert.Contains(t, v.Issues, "Potential SQL injection vulnerability")
}

func TestAnalyzeDangerousExecution(t *testing.T) {
	a := NewAnalyzer()
	v := a.Analyze("run.py", "+result = eval(user_expr)\n")

	assert.Equal(t, 50, v.Score)
	assert.True(t, v.Critical)
	assert.Equal(t, core.DecisionReject, v.Decision)
}

func TestAnalyzeCleanDiff(t *testing.T) {
	a := NewAnalyzer()
	v := a.Analyze("util.go", "+func add(a, b int) int { return a + b }\n")

	assert.Equal(t, 100, v.Score)
	assert.Empty(t, v.Issues)
	assert.False(t, v.Critical)
	assert.Equal(t, core.DecisionAccept, v.Decision)
	assert.Contains(t, v.Review, "No critical issues detected")
}

func TestAnalyzeSleepAndConcatenation(t *testing.T) {
	a := NewAnalyzer()
	diff := "+for i in range(1000):\n+    result += str(i)\n+time.sleep(5)\n"

	v := a.Analyze("worker.py", diff)

	// 100 - 15 (concat in loop) - 10 (blocking sleep): non-critical issues only.
	assert.Equal(t, 75, v.Score)
	assert.False(t, v.Critical)
	assert.Equal(t, core.DecisionAccept, v.Decision)
	assert.Len(t, v.Issues, 2)
}

func TestAnalyzeReviewTextFormat(t *testing.T) {
	a := NewAnalyzer()
	v := a.Analyze("auth.py", "+exec(payload)\n")

	assert.Contains(t, v.Review, "**DECISION**: REJECT")
	assert.Contains(t, v.Review, "- Dangerous code execution function")
}
