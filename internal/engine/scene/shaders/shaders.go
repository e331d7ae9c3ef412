// Package shaders holds the GLSL sources for the terrain viewer.
package shaders

// TerrainVertexShader transforms terrain vertices and forwards the
// attributes the fragment stage visualizes.
const TerrainVertexShader = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;
out float vHeight;

void main() {
    vNormal = aNormal;
    vTexCoord = aTexCoord;
    vHeight = aPosition.y;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// TerrainFragmentShader visualizes the smoothed normals and relative
// height directly; there is no lighting model.
const TerrainFragmentShader = `#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;
in float vHeight;

uniform vec2 uHeightRange; // (min, max)

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal) * 0.5 + 0.5;
    float span = max(uHeightRange.y - uHeightRange.x, 0.0001);
    float t = clamp((vHeight - uHeightRange.x) / span, 0.0, 1.0);
    vec3 low = vec3(0.18, 0.34, 0.16);
    vec3 high = vec3(0.62, 0.58, 0.48);
    vec3 base = mix(low, high, t);
    fragColor = vec4(mix(base, n, 0.35), 1.0);
}
`
