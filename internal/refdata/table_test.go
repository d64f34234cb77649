package refdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accident_datas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndLookup(t *testing.T) {
	path := writeTestCSV(t, `Accident,Basic Fault,Cases,Laws,URL
교차로 좌회전 추돌,70:30,대법원 2020다1234,도로교통법 제25조,https://drive.google.com/file/d/abc123/view
신호위반 직진 충돌,100:0,대법원 2019다5678,도로교통법 제5조,https://drive.google.com/file/d/def456/view
`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	c, err := table.Lookup("교차로 좌회전 추돌")
	require.NoError(t, err)
	assert.Equal(t, "70:30", c.BasicFault)
	assert.Equal(t, "대법원 2020다1234", c.Cases)
	assert.Equal(t, "도로교통법 제25조", c.Laws)
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", c.URL)
}

func TestLookup_NotFound(t *testing.T) {
	path := writeTestCSV(t, `Accident,Basic Fault,Cases,Laws,URL
교차로 좌회전 추돌,70:30,판례,법규,http://example.com
`)

	table, err := Load(path)
	require.NoError(t, err)

	_, err = table.Lookup("존재하지 않는 사고")
	assert.True(t, errors.Is(err, ErrCaseNotFound))
}

func TestLookup_FirstRowWinsOnDuplicate(t *testing.T) {
	path := writeTestCSV(t, `Accident,Basic Fault,Cases,Laws,URL
같은 사고,첫번째,판례1,법규1,http://one
같은 사고,두번째,판례2,법규2,http://two
`)

	table, err := Load(path)
	require.NoError(t, err)

	c, err := table.Lookup("같은 사고")
	require.NoError(t, err)
	assert.Equal(t, "첫번째", c.BasicFault)
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeTestCSV(t, `Accident,URL
사고,http://example.com
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "Basic Fault")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
