// Package goattr decodes semi-structured attribute metadata (nested
// key/value pairs and keyed sub-lists attached to a declaration) into
// strongly typed records, collecting every validation issue in a single
// pass instead of failing at the first one.
//
//   - A stable error model via Issues (position, code, message)
//   - A two-phase decode protocol per value kind (Parse then Validate)
//   - Accumulator/merge semantics for repeated attribute occurrences
//   - Optional fields, defaults, element-isolated lists, custom codecs
//
// Design policy:
//   - Keep the engine in the root package; only the code generator lives under internal/.
//   - Place metadata-tree drivers under source/ and the CLI under cmd/goattr.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rs := goattr.Record[Config]("config")
//	goattr.Field(rs, "name", goattr.String(), func(c *Config, v string) { c.Name = v })
//
//	attrs, pos, err := yamlmeta.Attrs("config.yaml", data)
//	cfg, err := goattr.DecodeAttrs(rs, pos, attrs)
package goattr
