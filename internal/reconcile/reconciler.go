// Package reconcile produces validated constructor argument plans for
// contract deployments. Two independent signals describe a constructor:
// the compiled interface (what will actually be deployed) and a lexical
// scan of the contract source. The reconciler resolves them into one
// ordered value list, or fails with a report explaining exactly which
// signal disagreed.
package reconcile

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/source"
)

// Reconciler builds argument plans. It is a pure computation over its
// inputs; concurrent calls for independent deployments are safe.
type Reconciler struct {
	log *slog.Logger
}

// New creates a Reconciler.
func New(log *slog.Logger) *Reconciler {
	return &Reconciler{log: log}
}

// Reconcile produces the ordered constructor argument values for one
// deployment attempt. Overrides win when their length matches the
// interface arity; otherwise the source signature is consulted, and the
// compiled interface is the signal of record when the two disagree. The
// returned plan's length always equals the interface arity.
func (r *Reconciler) Reconcile(iface domain.ContractInterface, sourceText string, overrides []string) (*domain.ArgumentPlan, error) {
	report := domain.NewReconciliationReport(iface.Arity())
	report.AddFinding("interface", true, iface.Arity(), iface.Signature())

	if len(overrides) > 0 {
		if len(overrides) == iface.Arity() {
			return r.planFromOverrides(iface, overrides, report)
		}
		report.AddFinding("overrides", true, len(overrides), "length mismatch, ignored")
		report.AddWarning("ignoring %d user override(s): interface declares %d parameter(s)",
			len(overrides), iface.Arity())
		r.log.Warn("override count does not match constructor arity",
			"overrides", len(overrides), "arity", iface.Arity())
	}

	if iface.Arity() == 0 {
		return r.validate(iface, &domain.ArgumentPlan{
			Confidence: domain.ConfidenceAgreement,
			Report:     report,
		})
	}

	sig, err := source.Scan(sourceText)
	switch {
	case err == nil && sig.Arity() == iface.Arity():
		report.AddFinding("source", true, sig.Arity(), "("+sig.Raw+")")
		return r.planFromSource(iface, sig, report)

	case err == nil:
		report.AddFinding("source", true, sig.Arity(), "("+sig.Raw+")")
		report.AddWarning("source constructor declares %d parameter(s), interface declares %d; using interface",
			sig.Arity(), iface.Arity())
		r.log.Warn("constructor arity disagreement, falling back to compiled interface",
			"source", sig.Arity(), "interface", iface.Arity())

	case errors.Is(err, domain.ErrNoConstructor):
		report.AddFinding("source", false, 0, "no constructor declaration")
		r.log.Debug("no constructor in source, using compiled interface")

	default:
		report.AddFinding("source", false, 0, err.Error())
		r.log.Warn("constructor scan failed, falling back to compiled interface", "error", err)
	}

	return r.planFromInterface(iface, report)
}

// planFromOverrides builds the plan directly from caller-supplied
// values. A literal that cannot be coerced to its declared type is fatal:
// the caller asked for a specific value and placeholders must not stand
// in for it.
func (r *Reconciler) planFromOverrides(iface domain.ContractInterface, overrides []string, report *domain.ReconciliationReport) (*domain.ArgumentPlan, error) {
	report.AddFinding("overrides", true, len(overrides), "used verbatim")

	values := make([]domain.ArgumentValue, iface.Arity())
	for i, param := range iface.Params {
		value, err := CoerceLiteral(param.Type, overrides[i])
		if err != nil {
			return nil, &domain.CoercionError{
				Param:   paramLabel(param, i),
				Type:    param.Type.String(),
				Literal: overrides[i],
				Err:     err,
			}
		}
		values[i] = domain.ArgumentValue{
			Name:       param.Name,
			Type:       param.Type.String(),
			Value:      value,
			Display:    FormatValue(value),
			Provenance: domain.ProvenanceUserSupplied,
		}
	}

	return r.validate(iface, &domain.ArgumentPlan{
		Values:     values,
		Confidence: domain.ConfidenceAgreement,
		Report:     report,
	})
}

// planFromSource builds the plan from the scanned signature, which is
// known to match the interface arity. Types are cross-checked per
// parameter; disagreement is a warning, not fatal, because the compiled
// interface reflects what will actually be deployed.
func (r *Reconciler) planFromSource(iface domain.ContractInterface, sig *source.Signature, report *domain.ReconciliationReport) (*domain.ArgumentPlan, error) {
	typesAgree := true

	values := make([]domain.ArgumentValue, iface.Arity())
	for i, param := range iface.Params {
		scanned := sig.Params[i]

		if got := NormalizeType(scanned.RawType); got != param.Type.String() {
			typesAgree = false
			report.AddWarning("parameter %s: source declares %s, interface declares %s",
				paramLabel(param, i), got, param.Type.String())
		}

		value := PlaceholderValue(param.Type)
		if scanned.Default != "" {
			coerced, err := CoerceLiteral(param.Type, scanned.Default)
			if err != nil {
				report.AddWarning("parameter %s: declared default %q unusable (%v), using placeholder",
					paramLabel(param, i), scanned.Default, err)
			} else {
				value = coerced
			}
		}

		values[i] = domain.ArgumentValue{
			Name:       pickName(param.Name, scanned.Name, i),
			Type:       param.Type.String(),
			Value:      value,
			Display:    FormatValue(value),
			Provenance: domain.ProvenanceSourceDerived,
		}
	}

	confidence := domain.ConfidenceAgreement
	if !typesAgree {
		confidence = domain.ConfidenceMismatch
	}

	return r.validate(iface, &domain.ArgumentPlan{
		Values:     values,
		Confidence: confidence,
		Report:     report,
	})
}

// planFromInterface builds the plan purely from the compiled interface,
// one placeholder per declared type.
func (r *Reconciler) planFromInterface(iface domain.ContractInterface, report *domain.ReconciliationReport) (*domain.ArgumentPlan, error) {
	values := make([]domain.ArgumentValue, iface.Arity())
	for i, param := range iface.Params {
		value := PlaceholderValue(param.Type)
		values[i] = domain.ArgumentValue{
			Name:       param.Name,
			Type:       param.Type.String(),
			Value:      value,
			Display:    FormatValue(value),
			Provenance: domain.ProvenanceInterfaceFallback,
		}
	}

	return r.validate(iface, &domain.ArgumentPlan{
		Values:     values,
		Confidence: domain.ConfidenceMismatch,
		Report:     report,
	})
}

// validate enforces the plan-length invariant. A successfully compiled
// contract cannot trip this, but a wrong-length plan must never reach
// the deployment submitter.
func (r *Reconciler) validate(iface domain.ContractInterface, plan *domain.ArgumentPlan) (*domain.ArgumentPlan, error) {
	if plan.Arity() != iface.Arity() {
		return nil, &domain.ArityMismatchError{
			Expected: iface.Arity(),
			Actual:   plan.Arity(),
			Report:   plan.Report,
		}
	}
	return plan, nil
}

func paramLabel(param domain.ConstructorParam, index int) string {
	if param.Name != "" {
		return param.Name
	}
	return pickName("", "", index)
}

func pickName(abiName, sourceName string, index int) string {
	if abiName != "" {
		return abiName
	}
	if sourceName != "" {
		return sourceName
	}
	return "arg" + strconv.Itoa(index)
}
