package projection

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/patterndb/pattern"
	"github.com/katalvlaran/patterndb/task"
)

// changedFact is a pattern position an operator changes from Pre to Eff.
type changedFact struct {
	pos, pre, eff int
}

// BuildOperators projects every operator of t onto the pattern hashed by h and
// returns the backward abstract operators. varToPos maps a task variable to
// its pattern position, or -1.
//
// Every affected pattern variable without a precondition is multiplied out
// over its whole domain, one abstract operator per value combination. A value
// equal to the effect value turns into a prevail fact; any other value is a
// change. Combinations that change nothing are dropped. Abstract operators
// sharing preconditions and hash effect are merged; the first concrete
// operator seen stays the representative.
//
// The combinations are walked with an explicit odometer, so the stack depth
// does not depend on how many variables lack a precondition.
func BuildOperators(t *task.Task, h *Hasher, varToPos []int) ([]AbstractOperator, error) {
	var (
		out      []AbstractOperator
		index    = make(map[string]int)
		prevail  []task.Fact
		changed  []changedFact
		noPre    []task.Fact // Var = pattern position, Value = effect value
		choice   []int
		expanded int
		ok       bool
	)
	for opID := range t.Operators {
		op := &t.Operators[opID]

		// 1) Split the projected facts.
		prevail, changed, noPre = prevail[:0], changed[:0], noPre[:0]
		for _, eff := range op.Effects {
			pos := varToPos[eff.Var]
			if pos < 0 {
				continue
			}
			if pre, has := op.Precondition(eff.Var); has {
				changed = append(changed, changedFact{pos: pos, pre: pre, eff: eff.Value})
			} else {
				noPre = append(noPre, task.Fact{Var: pos, Value: eff.Value})
			}
		}
		if len(changed) == 0 && len(noPre) == 0 {
			continue
		}
		for _, pre := range op.Preconditions {
			pos := varToPos[pre.Var]
			if pos < 0 || affects(op, pre.Var) {
				continue
			}
			prevail = append(prevail, task.Fact{Var: pos, Value: pre.Value})
		}

		// 2) Bound the number of combinations before enumerating them.
		// noPre positions are a subset of the pattern, so the product never
		// exceeds NumStates and this only fails if NewHasher admitted a
		// pattern above MaxStates.
		expanded = 1
		for _, f := range noPre {
			ok = pattern.IsProductWithinLimit(expanded, h.DomainSize(f.Var), pattern.MaxStates)
			if !ok {
				return nil, fmt.Errorf("%w: operator %d (%s)", ErrExpansionTooLarge, opID, op.Name)
			}
			expanded *= h.DomainSize(f.Var)
		}

		// 3) Walk every value combination of the unconditioned effects.
		choice = resetChoice(choice, len(noPre))
		for {
			facts, hashEffect := regression(h, prevail, changed, noPre, choice)
			if hashEffect != 0 {
				key := operatorKey(facts, hashEffect)
				if i, dup := index[key]; dup {
					if !slices.Contains(out[i].Operators, opID) {
						out[i].Operators = append(out[i].Operators, opID)
					}
				} else {
					index[key] = len(out)
					out = append(out, AbstractOperator{
						OperatorID:    opID,
						Operators:     []int{opID},
						Preconditions: facts,
						HashEffect:    hashEffect,
					})
				}
			}
			if !advance(choice, noPre, h) {
				break
			}
		}
	}

	return out, nil
}

// regression assembles the regression preconditions and hash effect of one
// combination.
func regression(h *Hasher, prevail []task.Fact, changed []changedFact, noPre []task.Fact, choice []int) ([]task.Fact, int) {
	facts := make([]task.Fact, 0, len(prevail)+len(changed)+len(noPre))
	facts = append(facts, prevail...)
	hashEffect := 0
	mult := h.Multipliers()
	for _, c := range changed {
		facts = append(facts, task.Fact{Var: c.pos, Value: c.eff})
		hashEffect += (c.pre - c.eff) * mult[c.pos]
	}
	for k, f := range noPre {
		facts = append(facts, task.Fact{Var: f.Var, Value: f.Value})
		hashEffect += (choice[k] - f.Value) * mult[f.Var]
	}
	slices.SortFunc(facts, func(a, b task.Fact) int { return a.Var - b.Var })

	return facts, hashEffect
}

// advance moves the odometer to the next combination and reports whether
// one exists.
func advance(choice []int, noPre []task.Fact, h *Hasher) bool {
	for k := len(choice) - 1; k >= 0; k-- {
		choice[k]++
		if choice[k] < h.DomainSize(noPre[k].Var) {
			return true
		}
		choice[k] = 0
	}

	return false
}

func resetChoice(choice []int, n int) []int {
	choice = slices.Grow(choice[:0], n)[:n]
	clear(choice)

	return choice
}

func affects(op *task.Operator, v int) bool {
	for _, eff := range op.Effects {
		if eff.Var == v {
			return true
		}
	}

	return false
}

func operatorKey(facts []task.Fact, hashEffect int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(hashEffect))
	for _, f := range facts {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(f.Var))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(f.Value))
	}

	return sb.String()
}
