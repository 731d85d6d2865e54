package pojocheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/report"
)

func TestToStringPass(t *testing.T) {
	suite := ForTypes(account{}).WithStore(report.NewStore())
	require.NoError(t, suite.CheckToString())

	msgs := suite.Store().Messages("pojocheck.account", report.ToString)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "String()")
}

func TestToStringFailsWhenOutputDrifts(t *testing.T) {
	suite := ForTypes(driftingString{}).WithStore(report.NewStore())
	err := suite.CheckToString()
	require.Error(t, err)

	var strErr *checkerr.ToStringError
	require.ErrorAs(t, err, &strErr)
	assert.Equal(t, checkerr.MsgToStringStable, strErr.Message)
	assert.Contains(t, err.Error(), "Same unchanged object should return same toString() value every time")
}

func TestCrossInstanceStringCheckOffByDefault(t *testing.T) {
	suite := ForTypes(constantString{}).WithStore(report.NewStore())
	require.NoError(t, suite.CheckToString())
}

func TestCrossInstanceStringCheckFailsOnCollision(t *testing.T) {
	suite := ForTypes(constantString{}).
		WithStore(report.NewStore()).
		WithCrossInstanceStringCheck()
	err := suite.CheckToString()
	require.Error(t, err)

	var strErr *checkerr.ToStringError
	require.ErrorAs(t, err, &strErr)
	assert.Equal(t, checkerr.MsgToStringDistinct, strErr.Message)
}

func TestCrossInstanceStringCheckPassesOnDistinctOutput(t *testing.T) {
	suite := ForTypes(account{}).
		WithStore(report.NewStore()).
		WithCrossInstanceStringCheck()
	require.NoError(t, suite.CheckToString())
}

func TestToStringSkipsEnums(t *testing.T) {
	suite := ForTypes(level(0)).WithStore(report.NewStore())
	require.NoError(t, suite.CheckToString())
	assert.Empty(t, suite.Store().Messages("pojocheck.level", report.ToString))
}
