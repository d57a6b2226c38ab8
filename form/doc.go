// Package form builds and encodes nested request parameters in the bracket
// notation the payments API expects on the wire.
//
// Parameters are modeled as a tree with a closed set of node kinds: scalars
// (string, integer, float, bool, decimal, timestamp), arrays, and nested
// mappings. [Values] is an ordered mapping, so encoding is deterministic for
// a given build sequence.
//
// # Encoding Rules
//
// Nested keys use bracket notation, array elements use an empty bracket
// suffix, and scalar values are percent-encoded per
// application/x-www-form-urlencoded:
//
//	v := form.New().
//	    Set("amount", form.Int(2000)).
//	    Set("currency", form.String("usd")).
//	    Set("card", form.Map(form.New().
//	        Set("number", form.String("4242424242424242")).
//	        Set("exp_year", form.Int(2030)))).
//	    Set("tags", form.Array(form.String("a"), form.String("b")))
//
//	v.Encode()
//	// amount=2000&currency=usd&card%5Bnumber%5D=4242424242424242&...
//
// Encoding never fails: an empty tree encodes to the empty string, and
// values that cannot be represented are skipped rather than reported.
//
// # Monetary Amounts
//
// The API expresses amounts in minor units, so integer scalars cover most
// cases. [Decimal] carries a shopspring/decimal value verbatim for the
// endpoints that take exact decimal quantities.
package form
