// Package reputation implements the deterministic fixed-point reputation math
// of tb3: subjective-logic opinions derived from evidence counts, a three-state
// hidden Markov model over edge behaviour and the thresholds that turn both
// into governance proposals. All values are int64 scaled by Scale.
package reputation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Scale is the fixed-point unit: 1.0 == Scale.
const Scale int64 = 1_000_000

// prior is the Dirichlet prior strength used when converting evidence.
const prior int64 = 2

// ProposalThreshold is the score under which an edge gets a governance proposal (0.30).
const ProposalThreshold = Scale * 3 / 10

// Observation classifies a single piece of behaviour evidence.
type Observation int

const (
	ObsGood Observation = iota
	ObsAnomaly
	ObsTimeout
)

func (o Observation) String() string {
	switch o {
	case ObsGood:
		return "good"
	case ObsAnomaly:
		return "anomaly"
	case ObsTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("observation(%d)", int(o))
	}
}

// Resource limits above which a stage log counts as an anomaly, and the
// latency above which it counts as a timeout.
const (
	CPUThresholdMs     int64 = 5000
	MemThresholdMB     int64 = 800
	NetThresholdKB     int64 = 5000
	LatencyThresholdMs int64 = 2000
	TimeoutThresholdMs int64 = 4000
)

// Classify derives the observation for a stage log's resource metrics.
func Classify(cpuMs, memMB, netKB, latencyMs int64) Observation {
	if latencyMs > TimeoutThresholdMs {
		return ObsTimeout
	}
	if cpuMs > CPUThresholdMs || memMB > MemThresholdMB || netKB > NetThresholdKB || latencyMs > LatencyThresholdMs {
		return ObsAnomaly
	}

	return ObsGood
}

func div(a, b int64) int64 {
	if b == 0 {
		return 0
	}

	return a * Scale / b
}

func nonNeg(a int64) int64 {
	if a < 0 {
		return 0
	}

	return a
}

// Opinion is a subjective-logic triple: belief, disbelief and uncertainty.
type Opinion struct {
	B, D, U int64
}

// Initial is the opinion of an edge without evidence.
func Initial() Opinion { return Opinion{U: Scale} }

// FromEvidence converts positive (r) and negative (s) evidence counts into an opinion.
func FromEvidence(r, s int64) Opinion {
	r, s = nonNeg(r), nonNeg(s)
	total := r + s + prior

	return Opinion{
		B: div(r, total),
		D: div(s, total),
		U: div(prior, total),
	}
}

// Score is the expected trust b + u/2.
func (o Opinion) Score() int64 { return nonNeg(o.B + o.U/2) }

// Belief is an HMM state distribution over (Trusted, Suspicious, Malicious).
type Belief struct {
	T, S, M int64
}

// Uniform returns the belief an edge starts with.
func Uniform() Belief {
	return Belief{T: Scale / 3, S: Scale / 3, M: Scale - 2*(Scale/3)}
}

//nolint: gochecknoglobals
var (
	transition = [3][3]int64{
		{900000, 80000, 20000},
		{100000, 800000, 100000},
		{20000, 80000, 900000},
	}
	emission = [3][3]int64{
		{850000, 120000, 30000},
		{200000, 600000, 200000},
		{30000, 120000, 850000},
	}
)

// Update runs one predict/update step of the HMM for obs and renormalizes the
// result so the three probabilities sum to Scale.
func (p Belief) Update(obs Observation) Belief {
	if obs < ObsGood || obs > ObsTimeout {
		obs = ObsAnomaly
	}

	t := (p.T*transition[0][0] + p.S*transition[1][0] + p.M*transition[2][0]) / Scale
	s := (p.T*transition[0][1] + p.S*transition[1][1] + p.M*transition[2][1]) / Scale
	m := (p.T*transition[0][2] + p.S*transition[1][2] + p.M*transition[2][2]) / Scale

	t = t * emission[0][obs] / Scale
	s = s * emission[1][obs] / Scale
	m = m * emission[2][obs] / Scale

	sum := t + s + m
	if sum <= 0 {
		return Uniform()
	}

	nt := t * Scale / sum
	ns := s * Scale / sum

	return Belief{T: nt, S: ns, M: Scale - nt - ns}
}

// State carries everything the reputation of an edge is computed from.
type State struct {
	EvidencePos int64
	EvidenceNeg int64
	Opinion     Opinion
	Belief      Belief
}

// NewState returns the state of a freshly registered edge.
func NewState() State {
	return State{Opinion: Initial(), Belief: Uniform()}
}

// Apply records one observation and recomputes the opinion and HMM belief.
func (st State) Apply(obs Observation) State {
	if obs == ObsGood {
		st.EvidencePos++
	} else {
		st.EvidenceNeg++
	}

	st.Opinion = FromEvidence(st.EvidencePos, st.EvidenceNeg)
	st.Belief = st.Belief.Update(obs)

	return st
}

// Score is the current score of the state.
func (st State) Score() int64 { return st.Opinion.Score() }

// NeedsProposal reports whether an edge with score and no open proposal
// should get one.
func NeedsProposal(score int64, hasPending bool) bool {
	return !hasPending && score < ProposalThreshold
}

// ProposalReason formats the reason recorded on automatic proposals.
func ProposalReason(score int64, source string) string {
	return fmt.Sprintf("auto: score<thr (score=%d, thr=%d); %s", score, ProposalThreshold, source)
}

// Snapshot is the reputation state hashed when it propagates between regions.
type Snapshot struct {
	EdgeAddr  string
	State     State
	UpdatedAt int64
}

// Hash returns the hex sha256 of the snapshot's pipe-separated rendering.
func (s Snapshot) Hash() string {
	payload := fmt.Sprintf(
		"edge=%s|b=%d|d=%d|u=%d|score=%d|pT=%d|pS=%d|pM=%d|ePos=%d|eNeg=%d|t=%d",
		s.EdgeAddr,
		s.State.Opinion.B,
		s.State.Opinion.D,
		s.State.Opinion.U,
		s.State.Score(),
		s.State.Belief.T,
		s.State.Belief.S,
		s.State.Belief.M,
		s.State.EvidencePos,
		s.State.EvidenceNeg,
		s.UpdatedAt,
	)
	sum := sha256.Sum256([]byte(payload))

	return hex.EncodeToString(sum[:])
}
