// Package pathutil provides helpers for route keys, component references and
// output file paths.
//
// # Route Keys
//
// A route key is a path template optionally followed by a "#" suffix that
// carries discriminators (literal query strings, Action=..., X-Amz-Target=...):
//
//	key, greedy := pathutil.NormalizeGreedy("/{Bucket}/{Key+}") // "/{Bucket}/{Key}", ["Key"]
//	key = pathutil.AppendFragment(key, "Action=GetObject")      // "/{Bucket}/{Key}#Action=GetObject"
//	pathutil.Deparameterize(key)                                // "/{param}/{param}"
//
// # Reference Builders
//
//	ref := pathutil.SchemaRef("Pet")          // "#/components/schemas/Pet"
//	ref := pathutil.ParameterRef("X-Amz-Date") // "#/components/parameters/X-Amz-Date"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It rejects
// symlinks. [ServiceOutputPath] builds the per-service output location.
package pathutil
