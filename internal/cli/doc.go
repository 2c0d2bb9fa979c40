// Package cli implements the interactive scheduler shell.
//
// Each input line is split on whitespace; the first token selects a command
// and the rest are its arguments. Every command prints exactly the lines a
// user expects (see describe for failures) and the loop always continues,
// except after quit/exit or end of input.
//
//	> create_patient <username> [password]
//	> create_caregiver <username> [password]
//	> login_patient <username> [password]
//	> login_caregiver <username> [password]
//	> search_caregiver_schedule <date>
//	> reserve <date> <vaccine>
//	> upload_availability <date>
//	> cancel <appointment_id>
//	> add_doses <vaccine> <number>
//	> show_appointments
//	> logout
//	> help
//	> quit
//
// When the password is omitted it is read from the terminal without echo.
// Dates use the YYYY-MM-DD format.
package cli
