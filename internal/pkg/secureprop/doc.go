// Package secureprop attaches password-style secret handling to a field of a
// record.
//
// A Definition describes the property once (name, hasher, validation rules)
// and hands out one Field per record instance. Setting a plaintext stores a
// salted hash in the field's digest, which is the only part a repository
// persists, under the "<name>_digest" column:
//
//	def, err := secureprop.Define("password", hash.NewBcrypt(bcrypt.DefaultCost, pepper))
//	...
//	pw := def.New()
//	_ = pw.Set("mUc3m00RsqyRe")
//	pw.SetConfirmation(&confirmation)
//	if errs := pw.Validate(); len(errs) > 0 {
//		// errs.Fields() => {"password_confirmation": "doesn't match Password"}
//	}
//	pw.Verify("mUc3m00RsqyRe") // true
//
// Records holding several secrets group them in a Props value.
package secureprop
