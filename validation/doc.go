// Package validation implements the client-side rules for post input.
//
// Two rule sets coexist. The submit-time validators (ValidateTitle,
// ValidateBody, ValidateTags, ValidatePost) run once over the whole form and
// block submission. TagSet is the add-time guard applied while tags are typed
// in one by one; it also refuses duplicates and a sixth tag.
//
// Forbidden words are matched case-insensitively as substrings of the title
// and the body only; tags are exempt.
package validation
