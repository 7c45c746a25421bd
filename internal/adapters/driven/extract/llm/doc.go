// Package llm extracts CV fields with a local language model.
//
// The document is converted to text, cleaned of contact details and sent to
// the model with the extraction prompts. The reply is parsed leniently,
// validated against a JSON schema and normalised. When the model is missing,
// unreachable or returns something unusable, rule-based extraction is used
// instead, so a readable PDF always produces a record.
package llm
