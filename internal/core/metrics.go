package core

// Revenue is patient count times visit value.
func Revenue(patients int, visitValue Money) Money {
	return Money{Cents: int64(patients) * visitValue.Cents}
}

// Commission applies a basis-point rate to a revenue amount, rounding
// half-up to the cent.
func Commission(revenue Money, rateBp int64) Money {
	return Money{Cents: (revenue.Cents*rateBp + MaxCommissionBp/2) / MaxCommissionBp}
}

// Revenue is derived on read from the canonical inputs; it is never stored,
// so it can never be observed stale.
func (p Professional) Revenue() Money {
	return Revenue(p.Patients, p.VisitValue)
}

// Commission is derived on read from the canonical inputs.
func (p Professional) Commission() Money {
	return Commission(p.Revenue(), p.CommissionBp)
}
