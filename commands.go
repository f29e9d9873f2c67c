package arena

type Command func(world *World)

type EntityCommand func(world *World, entityId EntityId)

// Commands buffers changes to a World. Systems receive Commands to spawn and despawn
// entities while they iterate over the world, the queued commands are applied in
// order once the system has finished.
type Commands struct {
	world *World
	queue []Command
}

// NewCommands creates an empty command buffer for the given world.
func NewCommands(world *World) *Commands {
	return &Commands{world: world}
}

// Apply runs all queued commands against the world and empties the queue.
func (c *Commands) Apply() {
	for idx := 0; idx < len(c.queue); idx++ {
		// a command might queue further commands, those are applied in the same pass
		c.queue[idx](c.world)
	}

	// reset the queue after applying it
	clear(c.queue)
	c.queue = c.queue[:0]
}

// Len returns the number of commands waiting to be applied.
func (c *Commands) Len() int {
	return len(c.queue)
}

func (c *Commands) Queue(command Command) *Commands {
	c.queue = append(c.queue, command)
	return c
}

// SpawnBody reserves an id for a new body. The body itself is added to the
// world once the commands are applied.
func (c *Commands) SpawnBody(body Body) EntityCommands {
	entityId := c.world.reserveEntityId()

	c.Queue(func(world *World) {
		world.spawnBodyWithId(entityId, body)
	})

	return EntityCommands{
		entityId: entityId,
		commands: c,
	}
}

func (c *Commands) Entity(entityId EntityId) EntityCommands {
	return EntityCommands{
		entityId: entityId,
		commands: c,
	}
}

type EntityCommands struct {
	entityId EntityId
	commands *Commands
}

func (e EntityCommands) Id() EntityId {
	return e.entityId
}

func (e EntityCommands) Update(commands ...EntityCommand) EntityCommands {
	e.commands.Queue(func(world *World) {
		for _, command := range commands {
			command(world, e.entityId)
		}
	})

	return e
}

// Despawn queues the removal of the entity. Despawning an entity twice is a no-op.
func (e EntityCommands) Despawn() {
	e.commands.Queue(func(world *World) {
		world.Despawn(e.entityId)
	})
}
