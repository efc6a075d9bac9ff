// Command arenactl runs allocator workloads and reports arena statistics.
package main

func main() {
	execute()
}
