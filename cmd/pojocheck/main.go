package main

import "github.com/dbsmedya/pojocheck/runner"

func main() {
	runner.Execute()
}
