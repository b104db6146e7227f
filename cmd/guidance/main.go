// Command guidance runs the KineticMind guidance relay, an HTTP service
// that turns mood check-ins into structured coaching guidance by proxying
// a single OpenAI chat completion per request.
package main

func main() {
	Execute()
}
