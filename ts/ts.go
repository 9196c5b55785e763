package ts

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"ctlcheck/bdd"
)

// TransitionSystem is the BDD encoding of a finite Kripke structure: N
// states, a transition relation T, an atomic-proposition labeling L, and
// a non-empty initial set I. It is immutable once New returns.
//
// At a state with no outgoing transition, AX φ and AF φ are vacuously
// true and A[φ U ψ] holds whenever φ or ψ does, since pre is defined via
// "there exists a successor"; callers that want a different behavior for deadlock
// states must add explicit self-loops before calling New.
type TransitionSystem struct {
	b *bdd.BDD

	numStates int
	k         int // bits per state

	bitToCurVar  []int // bitToCurVar[bit] = bdd variable index for that bit, current half
	bitToNextVar []int // same, next (primed) half

	toPrimed   *bdd.Substitution
	toUnprimed *bdd.Substitution

	curVars  *bitset.BitSet // the k current-state bdd variables
	nextVars *bitset.BitSet // the k next-state bdd variables

	transition bdd.Node
	labeling   map[int][]string
	init       []int

	stateCache map[int]bdd.Node
	apCache    map[string]bdd.Node

	logger *zap.Logger
}

// New builds a TransitionSystem for a Kripke structure with numStates
// states, the given transitions (u,v pairs), and labeling (state to
// atomic-proposition names). Returns ErrInvalidTransitionSystem if
// numStates < 1, a transition or labeled state lies outside
// [0,numStates), or the initial set is empty or out of range, and
// ErrBadPermutation if a var order is not a permutation of [0,k).
func New(numStates int, transitions [][2]int, labeling map[int][]string, opts ...Option) (*TransitionSystem, error) {
	if numStates < 1 {
		return nil, invalid("numStates must be at least 1, got %d", numStates)
	}
	cfg := newConfig(numStates)
	for _, opt := range opts {
		opt(cfg)
	}

	for _, tr := range transitions {
		if tr[0] < 0 || tr[0] >= numStates || tr[1] < 0 || tr[1] >= numStates {
			return nil, invalid("transition (%d,%d) out of range [0,%d)", tr[0], tr[1], numStates)
		}
	}
	for s := range labeling {
		if s < 0 || s >= numStates {
			return nil, invalid("labeling references out-of-range state %d", s)
		}
	}
	if len(cfg.init) == 0 {
		return nil, invalid("initial set must be non-empty")
	}
	for _, s := range cfg.init {
		if s < 0 || s >= numStates {
			return nil, invalid("initial state %d out of range [0,%d)", s, numStates)
		}
	}

	k := 1
	if numStates > 1 {
		k = bits.Len(uint(numStates - 1))
	}

	order := cfg.varOrder
	if order == nil {
		order = make([]int, k)
		for i := range order {
			order[i] = i
		}
	} else {
		if err := checkPermutation(order, k); err != nil {
			return nil, err
		}
	}

	b, err := bdd.New(2 * k)
	if err != nil {
		return nil, err
	}

	bitToCurVar := make([]int, k)
	bitToNextVar := make([]int, k)
	for pos, bit := range order {
		bitToCurVar[bit] = pos
		bitToNextVar[bit] = k + pos
	}

	curVars := bitset.New(uint(2 * k))
	nextVars := bitset.New(uint(2 * k))
	curOld := make([]int, k)
	curNew := make([]int, k)
	for j := 0; j < k; j++ {
		curVars.Set(uint(j))
		nextVars.Set(uint(k + j))
		curOld[j] = j
		curNew[j] = k + j
	}
	toPrimed, err := b.NewSubstitution(curOld, curNew)
	if err != nil {
		return nil, err
	}
	toUnprimed, err := b.NewSubstitution(curNew, curOld)
	if err != nil {
		return nil, err
	}

	t := &TransitionSystem{
		b:            b,
		numStates:    numStates,
		k:            k,
		bitToCurVar:  bitToCurVar,
		bitToNextVar: bitToNextVar,
		toPrimed:     toPrimed,
		toUnprimed:   toUnprimed,
		curVars:      curVars,
		nextVars:     nextVars,
		labeling:     labeling,
		init:         cfg.init,
		stateCache:   make(map[int]bdd.Node),
		apCache:      make(map[string]bdd.Node),
		logger:       cfg.logger,
	}

	t.transition = t.buildTransition(transitions)
	t.logger.Debug("built transition system",
		zap.Int("num_states", numStates),
		zap.Int("bits", k),
		zap.Int("transitions", len(transitions)))
	return t, nil
}

func checkPermutation(perm []int, k int) error {
	if len(perm) != k {
		return badPermutation(perm, k)
	}
	seen := make([]bool, k)
	for _, p := range perm {
		if p < 0 || p >= k || seen[p] {
			return badPermutation(perm, k)
		}
		seen[p] = true
	}
	return nil
}

// BDD returns the underlying BDD engine, for components (the checker)
// that need to perform boolean operations on the sets this package
// returns.
func (t *TransitionSystem) BDD() *bdd.BDD { return t.b }

// NumStates returns N.
func (t *TransitionSystem) NumStates() int { return t.numStates }

// StateBDD returns the conjunction of literals encoding state s over
// the current-state variables.
func (t *TransitionSystem) StateBDD(s int) bdd.Node {
	if n, ok := t.stateCache[s]; ok {
		return n
	}
	n := t.stateBits(s, t.bitToCurVar)
	t.stateCache[s] = n
	return n
}

func (t *TransitionSystem) primedStateBDD(s int) bdd.Node {
	return t.stateBits(s, t.bitToNextVar)
}

func (t *TransitionSystem) stateBits(s int, bitToVar []int) bdd.Node {
	res := bdd.True
	for i := 0; i < t.k; i++ {
		if (s>>uint(i))&1 == 1 {
			res = t.b.And(res, t.b.Var(bitToVar[i]))
		} else {
			res = t.b.And(res, t.b.NVar(bitToVar[i]))
		}
	}
	return res
}

func (t *TransitionSystem) buildTransition(transitions [][2]int) bdd.Node {
	trans := bdd.False
	for _, tr := range transitions {
		edge := t.b.And(t.StateBDD(tr[0]), t.primedStateBDD(tr[1]))
		trans = t.b.Or(trans, edge)
	}
	return trans
}

// APBDD returns the disjunction of StateBDD(s) over every state s
// labeled with name; False if no state carries that label.
func (t *TransitionSystem) APBDD(name string) bdd.Node {
	if n, ok := t.apCache[name]; ok {
		return n
	}
	res := bdd.False
	for s := 0; s < t.numStates; s++ {
		for _, p := range t.labeling[s] {
			if p == name {
				res = t.b.Or(res, t.StateBDD(s))
				break
			}
		}
	}
	t.apCache[name] = res
	return res
}

// T returns the transition relation BDD, over current and next-state
// variables.
func (t *TransitionSystem) T() bdd.Node { return t.transition }

// Pre returns {s | ∃s'. (s,s') ∈ T ∧ s' ∈ X}, computed as
// exists(next-vars, T ∧ prime(X)).
func (t *TransitionSystem) Pre(x bdd.Node) bdd.Node {
	primed := t.b.Let(x, t.toPrimed)
	return t.b.AndExist(t.transition, primed, bdd.OPand, t.nextVars)
}

// Post returns {s' | ∃s. s ∈ X ∧ (s,s') ∈ T}, unprimed back onto
// current-state variables. Not used by the evaluator; exposed for
// diagnostics and tests.
func (t *TransitionSystem) Post(x bdd.Node) bdd.Node {
	image := t.b.AndExist(x, t.transition, bdd.OPand, t.curVars)
	return t.b.Let(image, t.toUnprimed)
}

// Init returns the disjunction of StateBDD(s) over every initial state.
func (t *TransitionSystem) Init() bdd.Node {
	res := bdd.False
	for _, s := range t.init {
		res = t.b.Or(res, t.StateBDD(s))
	}
	return res
}
