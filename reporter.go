package cssreport

// Reporter consumes the full normalized result collection, performing a
// side effect and optionally failing. The stream runs every configured
// reporter concurrently over the same collection and awaits them all; one
// reporter failing does not stop the others.
type Reporter interface {
	Report(reports []FileReport) error
}
