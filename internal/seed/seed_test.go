package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
)

var loadTime = time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	data, err := Default(loadTime)
	require.NoError(t, err)

	require.Len(t, data.Groups, 5)
	require.Len(t, data.Politicians, 25)
	require.Len(t, data.Proposals, 5)
	require.Len(t, data.Statements, 5)

	r, err := roster.New(data.Groups, data.Politicians)
	require.NoError(t, err)
	assert.Equal(t, 100, r.TotalSeats())

	radicals, err := r.Group("radicals")
	require.NoError(t, err)
	assert.Equal(t, roster.FarLeft, radicals.Orientation)

	leader, err := r.Politician("g1")
	require.NoError(t, err)
	assert.Equal(t, "Group Leader", leader.Role)

	zoe, err := r.Politician("r2")
	require.NoError(t, err)
	assert.Equal(t, "Workers' Rights", zoe.Specialty)

	law1 := data.Proposals[0]
	assert.Equal(t, proposal.StatusDebating, law1.Status)
	assert.Equal(t, []string{"economy", "welfare", "social"}, law1.Tags)
	for _, p := range data.Proposals[1:] {
		assert.Equal(t, proposal.StatusPending, p.Status, p.ID)
	}

	first := data.Statements[0]
	assert.Equal(t, "l1", first.PoliticianID)
	assert.Equal(t, loadTime.Add(-5*time.Minute), first.Timestamp)
	for i := 1; i < len(data.Statements); i++ {
		assert.True(t, data.Statements[i-1].Timestamp.Before(data.Statements[i].Timestamp))
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader("groups: [oops"), loadTime)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = Load(strings.NewReader("factions: []"), loadTime)
	assert.Error(t, err, "unknown top-level keys are rejected")

	_, err = Load(strings.NewReader("groups:\n  - {id: x, orientation: sideways}\n"), loadTime)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestLoad_Empty(t *testing.T) {
	data, err := Load(strings.NewReader(""), loadTime)
	require.NoError(t, err)
	assert.Empty(t, data.Groups)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed/chamber.yaml", []byte(`
groups:
  - {id: whigs, name: Whigs, orientation: Center, seats: 3}
politicians:
  - {id: w1, name: Ada, group: whigs}
proposals:
  - {id: bill1, title: Bill, description: D, proposed_by: whigs, votes: {for: 2}}
`), 0o644))

	data, err := LoadFile(fs, "/seed/chamber.yaml", loadTime)
	require.NoError(t, err)
	require.Len(t, data.Groups, 1)
	assert.Equal(t, roster.Center, data.Groups[0].Orientation)
	assert.Equal(t, 2, data.Proposals[0].Votes.For)
	assert.Equal(t, loadTime, data.Proposals[0].SubmittedAt)

	_, err = LoadFile(fs, "/seed/missing.yaml", loadTime)
	assert.Error(t, err)
}

func TestLoadDir_MergesInPathOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/seed/a_groups.yaml":           "groups:\n  - {id: g, name: G, orientation: center}\n",
		"/seed/b/members.yaml":          "politicians:\n  - {id: p2, name: Two, group: g}\n",
		"/seed/a_groups_members.yaml":   "politicians:\n  - {id: p1, name: One, group: g}\n",
		"/seed/notes.txt":               "ignored",
		"/seed/c/deeper/proposals.yaml": "proposals:\n  - {id: law1, title: T, description: D, proposed_by: g}\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	data, err := LoadDir(fs, "/seed", loadTime)
	require.NoError(t, err)
	require.Len(t, data.Politicians, 2)
	assert.Equal(t, "p1", data.Politicians[0].ID)
	assert.Equal(t, "p2", data.Politicians[1].ID)
	require.Len(t, data.Proposals, 1)
}

func TestLoadDir_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	_, err := LoadDir(fs, "/empty", loadTime)
	assert.ErrorIs(t, err, errors.ErrSeedInvalid)
}

func TestLoadPath(t *testing.T) {
	fs := afero.NewMemMapFs()

	data, err := LoadPath(fs, "", loadTime)
	require.NoError(t, err)
	assert.Len(t, data.Groups, 5)

	require.NoError(t, afero.WriteFile(fs, "/one.yaml", DefaultDocument(), 0o644))
	data, err = LoadPath(fs, "/one.yaml", loadTime)
	require.NoError(t, err)
	assert.Len(t, data.Politicians, 25)

	_, err = LoadPath(fs, "/nope", loadTime)
	assert.Error(t, err)
}
