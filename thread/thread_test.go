package thread

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ThreadTestSuite struct {
	suite.Suite
}

func TestThreadTestSuite(t *testing.T) {
	suite.Run(t, new(ThreadTestSuite))
}

func (ts *ThreadTestSuite) TestNewDescriptorDefaults() {
	d := NewDescriptor(7, "worker", 60, 100)

	ts.Equal(7, d.ID)
	ts.Equal("worker", d.Name)
	ts.Equal(New, d.Status)
	ts.Equal(60, d.Priority)
	ts.Equal(60, d.InitPriority)
	ts.Equal(100, d.BurstTime)
}

func (ts *ThreadTestSuite) TestRemainRecomputesFromTotalExe() {
	d := NewDescriptor(1, "t", 60, 100)
	ts.Equal(100, d.Remain())

	d.TotalExe = 40
	ts.Equal(60, d.Remain())

	d.TotalExe = 100
	ts.Equal(0, d.Remain())
}

func (ts *ThreadTestSuite) TestStatusStringer() {
	cases := map[Status]string{
		New:        "NEW",
		Ready:      "READY",
		Running:    "RUNNING",
		Blocked:    "BLOCKED",
		Terminated: "TERMINATED",
	}
	for status, want := range cases {
		ts.Equal(want, status.String())
	}
}

func (ts *ThreadTestSuite) TestAddressSpaceSaveRestoreRoundTrip() {
	as := NewAddressSpace()
	ts.False(as.saved)

	as.SaveState()
	ts.True(as.saved)

	as.RestoreState()
	ts.False(as.saved)
}

func (ts *ThreadTestSuite) TestAddressSpaceNilSafe() {
	var as *AddressSpace
	ts.NotPanics(func() {
		as.SaveState()
		as.RestoreState()
	})
}

func (ts *ThreadTestSuite) TestUserStateRoundTrip() {
	d := NewDescriptor(1, "t", 60, 0)
	ts.False(d.userRegistersSaved)

	d.SaveUserState()
	ts.True(d.userRegistersSaved)

	d.RestoreUserState()
	ts.False(d.userRegistersSaved)
}

func (ts *ThreadTestSuite) TestCheckOverflowPanicsOnNegativeWatermark() {
	d := NewDescriptor(1, "t", 60, 0)
	d.stackWatermark = -1

	ts.Panics(func() {
		d.CheckOverflow()
	})
}

func (ts *ThreadTestSuite) TestCheckOverflowOKAtZero() {
	d := NewDescriptor(1, "t", 60, 0)
	ts.NotPanics(func() {
		d.CheckOverflow()
	})
}
