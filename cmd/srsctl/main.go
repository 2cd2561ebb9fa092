// Command srsctl runs maintenance tasks against the review database:
// migrations, token issuing, manual sweeps and item registration.
package main

func main() {
	Execute()
}
