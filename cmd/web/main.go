package main

import "github.com/awfaabdulkader/interior-architect-backend/internal/app"

func main() {
	app.Run()
}
