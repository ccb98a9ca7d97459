package automaton

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ravelin-labs/pltlsynth/pkg/formula"
	"github.com/ravelin-labs/pltlsynth/pkg/prop"
	"github.com/ravelin-labs/pltlsynth/pkg/synthresult"
)

// Encoder implements spec.md §4.1 steps 2-4: grounding, step-normal-form
// rewriting, and automaton assembly. Construct one per Spec being
// compiled — an Encoder owns its own ground/lift maps (spec.md §9's
// "Map<PForm, Prop> × Map<Prop, PForm> owned by the encoder" instead of
// reusing the alphabet's name slot for a boxed formula).
type Encoder struct {
	ctx      *prop.Context
	log      hclog.Logger
	groundOf map[string]prop.Prop      // canonical PForm text -> its ground proposition
	liftOf   map[int64]formula.PForm   // proposition id -> the PForm it grounds
	vars     *prop.Set                 // every grounded (= state) variable, insertion order
	snfCache map[string]formula.BForm  // memoized snf() by canonical PForm text
}

// NewEncoder creates an Encoder that interns propositions in ctx. Pass
// hclog.NewNullLogger() for silent operation.
func NewEncoder(ctx *prop.Context, log hclog.Logger) *Encoder {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Encoder{
		ctx:      ctx,
		log:      log.Named("encoder"),
		groundOf: make(map[string]prop.Prop),
		liftOf:   make(map[int64]formula.PForm),
		vars:     prop.NewSet(),
		snfCache: make(map[string]formula.BForm),
	}
}

// ground returns the proposition naming pf, creating a fresh one if this
// is the first time an equal (by canonical text) pf has been grounded.
// Every call site in this file only ever grounds a Y(·)/Z(·)-wrapped
// PForm, so ground doubles as variable registration (spec.md §4.1 step 2)
// — see encode's doc comment for why that's sound.
func (e *Encoder) ground(pf formula.PForm) prop.Prop {
	key := pf.String()
	if p, ok := e.groundOf[key]; ok {
		return p
	}
	p := e.ctx.FreshProp("g")
	e.groundOf[key] = p
	e.liftOf[p.ID()] = pf
	e.vars.Add(p)
	return p
}

// lift recovers the PForm a grounded proposition names. Panics if p was
// never grounded by this Encoder — every caller only invokes lift on
// members of the automaton's own Vars, which are exactly this Encoder's
// grounded propositions.
func (e *Encoder) lift(p prop.Prop) formula.PForm {
	pf, ok := e.liftOf[p.ID()]
	if !ok {
		panic(fmt.Sprintf("automaton: lift called on ungrounded proposition %s", p))
	}
	return pf
}

// Encode compiles spec into an Aut (spec.md §4.1). spec.Body need not be
// pre-normalized; Encode runs NNF itself.
//
// Grounding doubles as variable registration: every subterm this function
// grounds is wrapped in Y(·) or Z(·) (spec.md §4.1 step 2's "one variable
// per top-level Y/Z subterm, and for every S/T/O/H subterm, the variable
// for its implicit Y or Z wrapper"), so e.vars accumulates exactly the set
// of state variables the spec requires, with duplicates naturally removed
// by groundOf's canonical-text keying.
func (e *Encoder) Encode(spec Spec, starting Player) (*Aut, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	nnfBody := formula.NNF(spec.Body)
	e.collect(nnfBody)

	var outer formula.PForm
	if spec.Kind == F {
		outer = formula.Y(nnfBody)
	} else {
		outer = formula.Z(nnfBody)
	}
	objectiveVar := e.ground(outer)

	vars := sortByLiftedKey(e.vars.Slice(), e)

	init, err := e.buildInit(vars)
	if err != nil {
		return nil, err
	}

	trans, defs, err := e.buildTrans(vars)
	if err != nil {
		return nil, err
	}

	aut := &Aut{
		Kind:           spec.Kind,
		Inputs:         append([]prop.Prop(nil), spec.Inputs...),
		Outputs:        append([]prop.Prop(nil), spec.Outputs...),
		Vars:           vars,
		Init:           init,
		Trans:          trans,
		Defs:           defs,
		Objective:      formula.AtomB(objectiveVar),
		StartingPlayer: starting,
		ctx:            e.ctx,
	}

	e.log.Debug("encoded automaton", "vars", len(vars), "inputs", len(spec.Inputs), "outputs", len(spec.Outputs))

	if err := aut.Validate(); err != nil {
		return nil, err
	}
	return aut, nil
}

// collect walks a NNF'd PForm, grounding (spec.md §4.1 step 2) every
// Y/Z/O/H/S/T subterm it finds.
func (e *Encoder) collect(pf formula.PForm) {
	switch {
	case pf.IsFalse(), pf.IsTrue(), pf.IsAtom():
		return
	case pf.IsNot():
		return // NNF guarantees the operand is an atom; nothing to collect
	case pf.IsAnd(), pf.IsOr():
		e.collect(pf.Left())
		e.collect(pf.Right())
	case pf.IsYesterday():
		e.ground(pf)
		e.collect(pf.Operand())
	case pf.IsWeakYesterday():
		e.ground(pf)
		e.collect(pf.Operand())
	case pf.IsOnce():
		e.ground(formula.Y(pf)) // O uses the implicit Y wrapper
		e.collect(pf.Operand())
	case pf.IsHistorically():
		e.ground(formula.Z(pf)) // H uses the implicit Z wrapper
		e.collect(pf.Operand())
	case pf.IsSince():
		e.ground(formula.Y(pf)) // S uses the implicit Y wrapper
		e.collect(pf.Left())
		e.collect(pf.Right())
	case pf.IsTriggered():
		e.ground(formula.Z(pf)) // T uses the implicit Z wrapper
		e.collect(pf.Left())
		e.collect(pf.Right())
	default:
		panic(fmt.Sprintf("%v: collect encountered a non-NNF node", synthresult.ErrUnreachable))
	}
}

// snf is the step-normal-form rewrite of spec.md §4.1 step 3, memoized by
// canonical text (spec.md §9).
func (e *Encoder) snf(pf formula.PForm) (formula.BForm, error) {
	key := pf.String()
	if v, ok := e.snfCache[key]; ok {
		return v, nil
	}
	v, err := e.snfUncached(pf)
	if err != nil {
		return formula.BForm{}, err
	}
	e.snfCache[key] = v
	return v, nil
}

func (e *Encoder) snfUncached(pf formula.PForm) (formula.BForm, error) {
	switch {
	case pf.IsFalse():
		return formula.False(), nil
	case pf.IsTrue():
		return formula.True(), nil
	case pf.IsAtom():
		return formula.AtomB(pf.Atom()), nil
	case pf.IsNot():
		// NNF guarantees the operand is an atom.
		return formula.Not(formula.AtomB(pf.Operand().Atom())), nil
	case pf.IsAnd():
		l, err := e.snf(pf.Left())
		if err != nil {
			return formula.BForm{}, err
		}
		r, err := e.snf(pf.Right())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.And(l, r), nil
	case pf.IsOr():
		l, err := e.snf(pf.Left())
		if err != nil {
			return formula.BForm{}, err
		}
		r, err := e.snf(pf.Right())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.Or(l, r), nil
	case pf.IsYesterday():
		return formula.AtomB(e.ground(pf)), nil
	case pf.IsWeakYesterday():
		return formula.AtomB(e.ground(pf)), nil
	case pf.IsOnce():
		// snf(O a) = snf(a) ∨ ground(Y(O a))
		inner, err := e.snf(pf.Operand())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.Or(inner, formula.AtomB(e.ground(formula.Y(pf)))), nil
	case pf.IsHistorically():
		// snf(H a) = snf(a) ∧ ground(Z(H a))
		inner, err := e.snf(pf.Operand())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.And(inner, formula.AtomB(e.ground(formula.Z(pf)))), nil
	case pf.IsSince():
		// snf(a S b) = snf(b) ∨ (snf(a) ∧ ground(Y(a S b)))
		a, err := e.snf(pf.Left())
		if err != nil {
			return formula.BForm{}, err
		}
		b, err := e.snf(pf.Right())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.Or(b, formula.And(a, formula.AtomB(e.ground(formula.Y(pf))))), nil
	case pf.IsTriggered():
		// snf(a T b) = snf(b) ∧ (snf(a) ∨ ground(Z(a T b)))
		a, err := e.snf(pf.Left())
		if err != nil {
			return formula.BForm{}, err
		}
		b, err := e.snf(pf.Right())
		if err != nil {
			return formula.BForm{}, err
		}
		return formula.And(b, formula.Or(a, formula.AtomB(e.ground(formula.Z(pf))))), nil
	default:
		// Implies/Iff cannot survive NNF; seeing one here is a bug.
		return formula.BForm{}, fmt.Errorf("%w: snf encountered a non-pure-past node (-> or <->)", synthresult.ErrUnreachable)
	}
}

// buildInit assembles spec.md §4.1 step 4's init clause:
//
//	init ≡ (⋀ r ∈ Zreqs. ground(r)) ∧ (⋀ r ∈ Yreqs. ¬ground(r))
func (e *Encoder) buildInit(vars []prop.Prop) (formula.BForm, error) {
	var zReqs, yReqs []formula.BForm
	for _, v := range vars {
		lifted := e.lift(v)
		switch {
		case lifted.IsWeakYesterday():
			zReqs = append(zReqs, formula.AtomB(v))
		case lifted.IsYesterday():
			yReqs = append(yReqs, formula.Not(formula.AtomB(v)))
		default:
			return formula.BForm{}, fmt.Errorf("%w: grounded variable %s is neither Y- nor Z-wrapped", synthresult.ErrUnreachable, v)
		}
	}
	return formula.And(formula.AndAll(zReqs), formula.AndAll(yReqs)), nil
}

// buildTrans assembles spec.md §4.1 step 4's transition relation:
//
//	trans ≡ ⋀ x ∈ vars. primed(x) ↔ snf(lift(x).argument)
//
// defs collects each state variable's own right-hand side
// (snf(lift(x).argument), a formula over inputs/outputs/vars only) keyed
// by the variable's id — the per-variable "compose vector" entry
// spec.md §4.5's BDD solver composes against primed(x) to build Pre
// without an explicit primed existential.
func (e *Encoder) buildTrans(vars []prop.Prop) (formula.QForm, map[int64]formula.BForm, error) {
	defs := make(map[int64]formula.BForm, len(vars))
	var conjuncts []formula.QForm
	for _, v := range vars {
		arg := e.lift(v).Operand()
		rhs, err := e.snf(arg)
		if err != nil {
			return formula.QForm{}, nil, err
		}
		defs[v.ID()] = rhs
		conjunct := formula.Iff(formula.AtomB(e.ctx.Primed(v)), rhs)
		conjuncts = append(conjuncts, formula.Lift(conjunct))
	}
	return formula.AndAllQ(conjuncts), defs, nil
}

// sortByLiftedKey orders vars by the canonical textual key of the PForm
// each was grounded from (spec.md §9's deterministic-ordering
// requirement), not by the props' own (fresh-serial-based) names.
func sortByLiftedKey(vars []prop.Prop, e *Encoder) []prop.Prop {
	out := append([]prop.Prop(nil), vars...)
	keyOf := func(p prop.Prop) string { return e.lift(p).String() }
	// Simple insertion sort: automaton variable counts are small (one per
	// distinct temporal subterm), so O(n^2) is not a concern.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && keyOf(out[j]) < keyOf(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
