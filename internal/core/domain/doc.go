// Package domain holds the types shared by every layer of the apply CLI:
// the wizard state and its steps, the extracted and assembled application
// records, the persisted snapshot, uploaded documents and settings.
//
// It imports nothing beyond the standard library. Adapters and services
// depend on domain; domain depends on none of them.
package domain
