package reputation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tb3/pkg/reputation"
)

func TestFromEvidence(t *testing.T) {
	tests := []struct {
		name      string
		r, s      int64
		want      reputation.Opinion
		wantScore int64
	}{
		{name: "no evidence", want: reputation.Opinion{U: 1_000_000}, wantScore: 500_000},
		{name: "one good", r: 1, want: reputation.Opinion{B: 333_333, U: 666_666}, wantScore: 666_666},
		{name: "one bad", s: 1, want: reputation.Opinion{D: 333_333, U: 666_666}, wantScore: 333_333},
		{name: "three bad", s: 3, want: reputation.Opinion{D: 600_000, U: 400_000}, wantScore: 200_000},
		{name: "negative counts clamp", r: -4, s: -1, want: reputation.Opinion{U: 1_000_000}, wantScore: 500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reputation.FromEvidence(tt.r, tt.s)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantScore, got.Score())
		})
	}

	require.Equal(t, reputation.FromEvidence(0, 0), reputation.Initial())
}

func TestBeliefUpdate(t *testing.T) {
	u := reputation.Uniform()
	require.Equal(t, reputation.Scale, u.T+u.S+u.M)

	require.Equal(t, reputation.Belief{T: 795706, S: 176209, M: 28085}, u.Update(reputation.ObsGood))
	require.Equal(t, reputation.Belief{T: 149120, S: 701755, M: 149125}, u.Update(reputation.ObsAnomaly))
	require.Equal(t, reputation.Belief{T: 28081, S: 176209, M: 795710}, u.Update(reputation.ObsTimeout))

	p := u
	for range 3 {
		p = p.Update(reputation.ObsTimeout)
		require.Equal(t, reputation.Scale, p.T+p.S+p.M)
	}
	require.Equal(t, reputation.Belief{T: 1095, S: 33388, M: 965517}, p)
}

func TestClassify(t *testing.T) {
	require.Equal(t, reputation.ObsGood, reputation.Classify(40, 120, 30, 200))
	require.Equal(t, reputation.ObsGood, reputation.Classify(5000, 800, 5000, 2000), "thresholds are exclusive")
	require.Equal(t, reputation.ObsAnomaly, reputation.Classify(5001, 0, 0, 0))
	require.Equal(t, reputation.ObsAnomaly, reputation.Classify(0, 801, 0, 0))
	require.Equal(t, reputation.ObsAnomaly, reputation.Classify(0, 0, 5001, 0))
	require.Equal(t, reputation.ObsAnomaly, reputation.Classify(0, 0, 0, 2001))
	require.Equal(t, reputation.ObsTimeout, reputation.Classify(0, 0, 0, 4001))
}

func TestStateApplyAndProposal(t *testing.T) {
	st := reputation.NewState()
	require.Equal(t, int64(500_000), st.Score())
	require.False(t, reputation.NeedsProposal(st.Score(), false))

	st = st.Apply(reputation.ObsAnomaly)
	require.Equal(t, int64(1), st.EvidenceNeg)
	require.False(t, reputation.NeedsProposal(st.Score(), false))

	st = st.Apply(reputation.ObsTimeout)
	require.Equal(t, int64(250_000), st.Score())
	require.True(t, reputation.NeedsProposal(st.Score(), false))
	require.False(t, reputation.NeedsProposal(st.Score(), true), "an open proposal suppresses new ones")

	st = st.Apply(reputation.ObsGood)
	require.Equal(t, int64(1), st.EvidencePos)
	require.Equal(t, int64(2), st.EvidenceNeg)

	require.Equal(t,
		"auto: score<thr (score=250000, thr=300000); log:EXEC",
		reputation.ProposalReason(250_000, "log:EXEC"),
	)
}

func TestSnapshotHash(t *testing.T) {
	s := reputation.Snapshot{EdgeAddr: "e1", State: reputation.NewState(), UpdatedAt: 1700000000}
	require.Equal(t, "325777d4a866353d5e0e161c585a66eabb96cd3d07e9305967f50102cc7b4780", s.Hash())

	s.UpdatedAt++
	require.NotEqual(t, "325777d4a866353d5e0e161c585a66eabb96cd3d07e9305967f50102cc7b4780", s.Hash())
}
