// Package harness runs scripted staffbook sessions and checks what they
// produced.
//
// A scenario feeds a fixed list of input lines to a fresh shell over an
// empty directory, captures the console transcript and the final directory
// contents, then evaluates assertions against both.
//
// # Scenario Format
//
//	name: edit_name_accepted
//	description: "Accepted name change is visible in the listing"
//	session: "s-edit-1"          # optional fixed session token
//	confirm_token: "yes"         # optional, defaults to yes
//	header_spacing: 30           # optional, defaults to 30
//	allow_duplicate_ids: false   # optional
//	input:
//	  - "1"
//	  - E1
//	  - Ann
//	  - "50000"
//	  - "5"
//	assertions:
//	  - type: output_contains
//	    text: "Employee added successfully."
//	  - type: final_state
//	    id: E1
//	    expect: { name: Ann, salary: "$50,000.00" }
//
// # Assertion Types
//
//   - output_contains: the transcript contains text
//   - output_order: texts appear in the transcript in the given order
//   - record_count: the directory holds exactly count records
//   - final_state: the record with id has the expected name, salary (view
//     values) and/or describe string
//   - record_absent: no record has id
//   - log_contains: the session log contains text
//
// # Deterministic Testing
//
// Transcripts contain no timestamps or generated ids, so they can be
// compared byte for byte against golden files. Session tokens come from the
// scenario (or a fixed default), never from the clock.
package harness
